package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steam-intake/internal/wizard/models"
)

func statuses(steps []ProgressStep) map[models.StepID]StepStatus {
	out := make(map[models.StepID]StepStatus, len(steps))
	for _, s := range steps {
		out[s.Step] = s.Status
	}
	return out
}

func TestProject(t *testing.T) {
	t.Run("no role keeps both profiles inactive", func(t *testing.T) {
		got := statuses(Project(models.StepBasic, ""))
		assert.Equal(t, StatusActive, got[models.StepBasic])
		assert.Equal(t, StatusInactive, got[models.StepMentorProfile])
		assert.Equal(t, StatusInactive, got[models.StepMenteeProfile])
		assert.Equal(t, StatusInactive, got[models.StepScheduling])
	})

	t.Run("mentee on profile marks the mentor branch skipped", func(t *testing.T) {
		got := statuses(Project(models.StepMenteeProfile, models.RoleMentee))
		assert.Equal(t, StatusCompleted, got[models.StepBasic])
		assert.Equal(t, StatusSkipped, got[models.StepMentorProfile])
		assert.Equal(t, StatusActive, got[models.StepMenteeProfile])
		assert.Equal(t, StatusInactive, got[models.StepScheduling])
	})

	t.Run("skipped wins over completed at the final step", func(t *testing.T) {
		got := statuses(Project(models.StepScheduling, models.RoleMentee))
		assert.Equal(t, StatusCompleted, got[models.StepBasic])
		assert.Equal(t, StatusSkipped, got[models.StepMentorProfile])
		assert.Equal(t, StatusCompleted, got[models.StepMenteeProfile])
		assert.Equal(t, StatusActive, got[models.StepScheduling])
	})

	t.Run("mentor walk mirrors the branch", func(t *testing.T) {
		got := statuses(Project(models.StepScheduling, models.RoleMentor))
		assert.Equal(t, StatusCompleted, got[models.StepMentorProfile])
		assert.Equal(t, StatusSkipped, got[models.StepMenteeProfile])
	})

	t.Run("projection is ordered for display", func(t *testing.T) {
		steps := Project(models.StepBasic, "")
		require.Len(t, steps, 4)
		for i, s := range steps {
			assert.Equal(t, i+1, s.Position)
			assert.NotEmpty(t, s.Label)
		}
	})
}
