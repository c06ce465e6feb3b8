package drawtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodecRegistered(t *testing.T) {
	c := encoding.GetCodec(codecName)
	require.NotNil(t, c)
	_, ok := c.(codec)
	assert.True(t, ok, "default codec is %T", c)
}

func TestCodecRow(t *testing.T) {
	in := &TargetRow{
		Target: 4,
		Totals: []*LengthTotal{{Length: 1, WeightedTotal: 4}, {Length: 2, WeightedTotal: 44}},
	}
	b, err := codec{}.Marshal(in)
	require.NoError(t, err)

	out := new(TargetRow)
	require.NoError(t, codec{}.Unmarshal(b, out))
	assert.Equal(t, int32(4), out.GetTarget())
	require.Len(t, out.GetTotals(), 2)
	assert.Equal(t, int64(44), out.GetTotals()[1].GetWeightedTotal())
}

func TestCodecRejectsNonMessage(t *testing.T) {
	_, err := codec{}.Marshal(struct{}{})
	assert.Error(t, err)
	assert.Error(t, codec{}.Unmarshal(nil, &struct{}{}))
}

func TestNilGetters(t *testing.T) {
	var resp *ReachResponse
	assert.Nil(t, resp.GetProbability())
	assert.Equal(t, "", resp.GetError())
	var f *Fraction
	assert.Equal(t, int64(0), f.GetDenominator())
}
