package tablefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytecamp2019d/drawtable/pkg/drawtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func golden(t *testing.T) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", DefaultName))
	require.NoError(t, err)
	return b
}

func TestProduceTableMatchesGolden(t *testing.T) {
	rows, err := drawtable.ProduceTable()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))
	assert.Equal(t, string(golden(t)), buf.String())
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []drawtable.Row{{
		Target: 4,
		Totals: []drawtable.LengthTotal{{Length: 1, WeightedTotal: 4}, {Length: 2, WeightedTotal: 44}, {Length: 3, WeightedTotal: 144}, {Length: 4, WeightedTotal: 24}, {Length: 5, WeightedTotal: 0}, {Length: 6, WeightedTotal: 0}, {Length: 7, WeightedTotal: 0}},
	}})
	require.NoError(t, err)
	assert.Equal(t, "[(1, 4), (2, 44), (3, 144), (4, 24), (5, 0), (6, 0), (7, 0)]\n", buf.String())
}

func TestRead(t *testing.T) {
	rows, err := Read(bytes.NewReader(golden(t)))
	require.NoError(t, err)
	require.Len(t, rows, drawtable.Targets)

	assert.Equal(t, 19, rows[19].Target)
	assert.Equal(t, int64(72477504), rows[19].Total(7))
	assert.Equal(t, int64(16), rows[10].Total(1))
	for _, r := range rows {
		assert.Len(t, r.Totals, 7)
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))
	assert.Equal(t, string(golden(t)), buf.String())
}

func TestReadMalformed(t *testing.T) {
	for _, in := range []string{
		"(1, 4)]\n",
		"[(1 4)]\n",
		"[(x, 4)]\n",
		"[(1, 4.5)]\n",
		"[1, 4]\n",
	} {
		_, err := Read(strings.NewReader(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestWriteReport(t *testing.T) {
	rows, err := Read(bytes.NewReader(golden(t)))
	require.NoError(t, err)

	var en bytes.Buffer
	require.NoError(t, WriteReport(&en, rows, language.English))
	assert.Contains(t, en.String(), "72,477,504")
	assert.Contains(t, en.String(), "7 cards")
	assert.Equal(t, drawtable.Targets+1, strings.Count(en.String(), "\n"))

	var de bytes.Buffer
	require.NoError(t, WriteReport(&de, rows, language.German))
	assert.Contains(t, de.String(), "72.477.504")
}
