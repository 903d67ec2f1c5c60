// Package database - Test phân tích tag index.
package database

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	cases := []struct {
		tag  string
		want int
	}{
		{"single:1", 1},
		{"single", 1},
		{"single:-1", -1}, // dạng khai báo của generate_ts trên summaries
		{"single,order:-1", -1},
		{"compound:vid_dt,order:-1", -1},
		{"unique", 1},
	}
	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			assert.Equal(t, tc.want, parseOrder(tc.tag))
		})
	}
}

func TestParseIndexTag(t *testing.T) {
	configs := parseIndexTag("single:-1;unique,sparse")
	require.Len(t, configs, 2)

	order, ok := configs[0]["single"]
	require.True(t, ok)
	assert.Equal(t, "-1", order)

	_, ok = configs[1]["unique"]
	assert.True(t, ok)
	_, ok = configs[1]["sparse"]
	assert.True(t, ok)
}

func TestBsonFieldName(t *testing.T) {
	type doc struct {
		GenerateTs int64  `bson:"generate_ts,omitempty"`
		Skipped    string `bson:"-"`
		NoTag      string
	}
	rt := reflect.TypeOf(doc{})

	f, _ := rt.FieldByName("GenerateTs")
	assert.Equal(t, "generate_ts", bsonFieldName(f))

	f, _ = rt.FieldByName("Skipped")
	assert.Equal(t, "", bsonFieldName(f))

	f, _ = rt.FieldByName("NoTag")
	assert.Equal(t, "", bsonFieldName(f))
}
