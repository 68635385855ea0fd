package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantFromString(t *testing.T) {
	a := assert.New(t)

	for s, expected := range map[string]Variant{
		"a":        VariantA,
		"B":        VariantB,
		" c ":      VariantC,
		"round":    VariantA,
		"Blinds":   VariantB,
		"freetext": VariantC,
	} {
		variant, err := VariantFromString(s)
		a.NoError(err, s)
		a.Equal(expected, variant, s)
	}

	_, err := VariantFromString("d")
	a.EqualError(err, "invalid variant: d")
}

func TestVariant_Schema(t *testing.T) {
	a := assert.New(t)

	a.Equal(Schema{Money: Continuous, Trailer: TrailerRoundLabel}, VariantA.Schema())
	a.Equal(Schema{TurnIndices: true, Money: Integer, Trailer: TrailerBlinds}, VariantB.Schema())
	a.Equal(Schema{Money: Continuous, Trailer: TrailerFreeText}, VariantC.Schema())
	a.Panics(func() { Variant("x").Schema() })

	a.Equal(8, VariantA.Lines(1))
	a.Equal(12, VariantB.Lines(2))
	a.Equal(7, VariantC.Lines(0))
}

func TestVariant_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(VariantB)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":"b","name":"Integer Blinds","money":"integer"}`, string(b))
}
