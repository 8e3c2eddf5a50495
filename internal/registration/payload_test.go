package registration

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"steam-intake/internal/wizard/models"
)

func completedMentee() *models.AnswerRecord {
	rec := models.NewAnswerRecord()
	rec.Email = "kid@example.com"
	rec.Name = "Alex Kid"
	rec.Role = models.RoleMentee
	rec.Grade = 6
	rec.MenteeReasons = []int{1}
	rec.Interests = []int{1, 3, models.Interests.OtherID()}
	rec.InterestOther = "Chess"
	rec.Availability = []string{"Monday-7am to 9am"}
	return rec
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, []string{}, d.MatchPairIDs)
	assert.True(t, d.IsAvailableForMatching)
	assert.Zero(t, d.MentoringSessionsCompleted)
}

func TestBuildMentor(t *testing.T) {
	t.Run("rejects the wrong role", func(t *testing.T) {
		_, err := BuildMentor(completedMentee())
		assert.Error(t, err)
	})

	t.Run("carries the capacity and defaults", func(t *testing.T) {
		rec := models.NewAnswerRecord()
		rec.Role = models.RoleMentor
		rec.Capacity = 3

		p, err := BuildMentor(rec)
		require.NoError(t, err)
		assert.Equal(t, 3, p.WillingToAdvise)
		assert.Equal(t, []string{}, p.MatchPairIDs)
		assert.True(t, p.IsAvailableForMatching)
		assert.Equal(t, "mentor", p.Role)
	})

	t.Run("serializes null coordinates when unresolved", func(t *testing.T) {
		rec := models.NewAnswerRecord()
		rec.Role = models.RoleMentor
		p, err := BuildMentor(rec)
		require.NoError(t, err)

		data, err := json.Marshal(p)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"latitude":null`)
		assert.Contains(t, string(data), `"match_pair_ids":[]`)
	})
}

func TestBuildMentee(t *testing.T) {
	t.Run("appends other free text after the ids", func(t *testing.T) {
		p, err := BuildMentee(completedMentee())
		require.NoError(t, err)
		assert.Equal(t, []any{1, 3, models.Interests.OtherID(), "Chess"}, p.Interests)
		assert.Equal(t, []any{1}, p.ReasonsForMentoring)
	})

	t.Run("no sentinel means no appended text", func(t *testing.T) {
		rec := completedMentee()
		rec.Interests = []int{1, 3}
		p, err := BuildMentee(rec)
		require.NoError(t, err)
		assert.Equal(t, []any{1, 3}, p.Interests)
	})

	t.Run("wire names match the remote contract", func(t *testing.T) {
		p, err := BuildMentee(completedMentee())
		require.NoError(t, err)
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &raw))
		for _, key := range []string{
			"email", "phone_number", "address_line_1", "zipcode",
			"ethnicity_preference", "gender_preference", "methods",
			"sessionPreferences", "reasons_for_mentoring", "interests",
			"unavailableDates", "match_pair_ids", "is_available_for_matching",
			"mentoring_sessions_completed",
		} {
			assert.Contains(t, raw, key)
		}
	})
}
