package proto_test

import (
	"reflect"
	"strings"
	"testing"

	"proto-manager/core/proto"

	"github.com/stretchr/testify/assert"
)

// Every declared field must have a matching mapstructure tag on the record type.
func TestSchema_MatchesRecordTags(t *testing.T) {
	tests := []struct {
		name   string
		record proto.Record
	}{
		{"Item", proto.Item{}},
		{"Critter", proto.Critter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tags := map[string]bool{}
			typ := reflect.TypeOf(tt.record)
			for i := 0; i < typ.NumField(); i++ {
				tag := typ.Field(i).Tag.Get("mapstructure")
				tags[strings.Split(tag, ",")[0]] = true
			}

			s := tt.record.Schema()
			assert.True(t, tags[s.Identifier.Name], s.Identifier.Name)
			assert.True(t, tags[s.Discriminant.Name], s.Discriminant.Name)
			for _, f := range s.Fields {
				assert.True(t, tags[f.Name], f.Name)
			}
		})
	}
}

func TestSchema_Canonical(t *testing.T) {
	s := proto.Item{}.Schema()

	tests := []struct {
		key      string
		wantName string
		wantOK   bool
	}{
		{"ProtoId", "ProtoId", true},
		{"Pid", "ProtoId", true},
		{"PicMapName", "PicMap", true},
		{"Type", "Type", true},
		{"Grid_Type", "Grid_Type", true},
		{"Weight", "Weight", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			name, ok := s.Canonical(tt.key)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestSchema_Accepts(t *testing.T) {
	assert.True(t, proto.Item{}.Schema().Accepts("Proto"))
	assert.False(t, proto.Item{}.Schema().Accepts("Critter proto"))
	assert.True(t, proto.Critter{}.Schema().Accepts("Critter proto"))
	assert.True(t, proto.Critter{}.Schema().Accepts("Proto"))
}
