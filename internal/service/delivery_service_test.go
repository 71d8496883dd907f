package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-Matheka/dignifymarketplace/internal/model"
	"github.com/S-Matheka/dignifymarketplace/internal/repository"
)

func TestDeliveryService_AcceptAndComplete(t *testing.T) {
	svc := NewDeliveryService(repository.NewDeliveryRepository())

	open := svc.Available()
	require.NotEmpty(t, open)
	jobID := open[0].ID

	accepted, err := svc.Accept(jobID, "transporter-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusAccepted, accepted.Status)
	assert.Equal(t, "transporter-1", accepted.AcceptedBy)

	// An accepted job is no longer on the board.
	for _, j := range svc.Available() {
		assert.NotEqual(t, jobID, j.ID)
	}

	done, err := svc.Complete(jobID, "transporter-1")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusDelivered, done.Status)
	assert.NotEmpty(t, done.CompletedOn)

	history := svc.History("transporter-1")
	require.Len(t, history, 1)
	assert.Equal(t, jobID, history[0].ID)
}

func TestDeliveryService_AcceptTakenJob(t *testing.T) {
	svc := NewDeliveryService(repository.NewDeliveryRepository())

	jobID := svc.Available()[0].ID
	_, err := svc.Accept(jobID, "transporter-1")
	require.NoError(t, err)

	_, err = svc.Accept(jobID, "transporter-2")
	assert.ErrorIs(t, err, ErrJobNotOpen)
}

func TestDeliveryService_CompleteNotOwned(t *testing.T) {
	svc := NewDeliveryService(repository.NewDeliveryRepository())

	jobID := svc.Available()[0].ID
	_, err := svc.Accept(jobID, "transporter-1")
	require.NoError(t, err)

	_, err = svc.Complete(jobID, "transporter-2")
	assert.ErrorIs(t, err, ErrJobNotOwned)
}

func TestDeliveryService_UnknownJob(t *testing.T) {
	svc := NewDeliveryService(repository.NewDeliveryRepository())

	_, err := svc.Accept("no-such-job", "transporter-1")
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = svc.Complete("no-such-job", "transporter-1")
	assert.ErrorIs(t, err, ErrJobNotFound)
}
