package chatdto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anderson2805/social-live-exploration/internal/global"
)

func validEnrichmentUpdate() EnrichmentUpdateInput {
	return EnrichmentUpdateInput{
		MsgSeq:         7,
		Lang:           "EN",
		Senti:          "Pos",
		SG:             "Favor",
		Mil:            "Against",
		RnR:            "Neutral",
		SocietalImpact: "Neutral",
	}
}

func TestEnrichmentUpdateInput_Validate(t *testing.T) {
	global.InitValidator()

	t.Run("all labels valid", func(t *testing.T) {
		input := validEnrichmentUpdate()
		require.NoError(t, global.Validate.Struct(input))
	})

	// Tin off-topic được classifier gắn NA cho cả bốn stance; batch chứa
	// các tin này vẫn phải qua được validation.
	t.Run("NA stance accepted", func(t *testing.T) {
		input := validEnrichmentUpdate()
		input.SG = "NA"
		input.Mil = "NA"
		input.RnR = "NA"
		input.SocietalImpact = "NA"
		require.NoError(t, global.Validate.Struct(input))
	})

	t.Run("lowercase stance rejected", func(t *testing.T) {
		input := validEnrichmentUpdate()
		input.SG = "favor"
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("unknown language rejected", func(t *testing.T) {
		input := validEnrichmentUpdate()
		input.Lang = "FR"
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("unknown sentiment rejected", func(t *testing.T) {
		input := validEnrichmentUpdate()
		input.Senti = "Positive"
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("missing stance rejected", func(t *testing.T) {
		input := validEnrichmentUpdate()
		input.RnR = ""
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("batch with NA passes dive", func(t *testing.T) {
		na := validEnrichmentUpdate()
		na.SocietalImpact = "NA"
		batch := EnrichManyInput{Updates: []EnrichmentUpdateInput{validEnrichmentUpdate(), na}}
		require.NoError(t, global.Validate.Struct(batch))
	})
}

func TestMessageUpdateInput_Validate(t *testing.T) {
	global.InitValidator()

	na := "NA"
	input := MessageUpdateInput{SG: &na, Mil: &na}
	require.NoError(t, global.Validate.Struct(input))

	bad := "Maybe"
	input = MessageUpdateInput{SG: &bad}
	assert.Error(t, global.Validate.Struct(input))
}
