package proto_test

import (
	"testing"

	"proto-manager/core/proto"
	"proto-manager/core/protoerr"
	"proto-manager/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genericItems = `# generic items
[Proto]
ProtoId=2007
Type=1
PicMap=art/items/tirs.frm
Flags=134217728
Weight=250
Code=007

[Proto]
Pid = 2008            # alias
Type = 2
PicMapName = art/items/knife.frm
Grid.Type = 3
`

func TestDecodeSource_Items(t *testing.T) {
	items, err := proto.DecodeSource[proto.Item](genericItems, "generic.fopro")
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, proto.ID(2007), first.ProtoID())
	assert.Equal(t, uint8(1), first.Type)
	assert.Equal(t, "art/items/tirs.frm", first.PicMap)
	require.NotNil(t, first.Flags)
	assert.Equal(t, uint32(134217728), *first.Flags)
	assert.Nil(t, first.GridType)
	assert.Equal(t, map[string]any{"Weight": int64(250), "Code": "007"}, first.Extra)

	second := items[1]
	assert.Equal(t, proto.ID(2008), second.ProtoID())
	assert.Equal(t, uint8(2), second.Type)
	assert.Equal(t, "art/items/knife.frm", second.PicMap)
	assert.Nil(t, second.Flags)
	require.NotNil(t, second.GridType)
	assert.Equal(t, uint8(3), *second.GridType)
	assert.Empty(t, second.Extra)
}

func TestDecodeSource_Critters(t *testing.T) {
	text := "[Critter proto]\nPid=100\nST_BASE_CRTYPE=5\nST_STRENGTH=6\n" +
		"[Critter proto]\nProtoId=101\nBaseType=0\n"

	critters, err := proto.DecodeSource[proto.Critter](text, "critters.fopro")
	require.NoError(t, err)
	require.Len(t, critters, 2)

	assert.Equal(t, proto.ID(100), critters[0].ProtoID())
	assert.Equal(t, uint32(5), critters[0].BaseType)
	assert.Equal(t, map[string]any{"ST_STRENGTH": int64(6)}, critters[0].Extra)
	assert.Equal(t, proto.ID(101), critters[1].ProtoID())
	assert.Equal(t, uint32(0), critters[1].BaseType)
}

func TestDecodeSource_NumericStringField(t *testing.T) {
	items, err := proto.DecodeSource[proto.Item]("[Proto]\nPid=1\nType=0\nPicMap=123\n", "")
	require.NoError(t, err)
	assert.Equal(t, "123", items[0].PicMap)
}

func TestDecodeSource_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		kind protoerr.Kind
		line int
	}{
		{
			name: "OnlyDiscriminant",
			text: "[Proto]\nType=1\nPicMap=a\n[Proto]\nPid=2\nType=1\nPicMap=b\n",
			kind: protoerr.IncompleteRecord,
			line: 1,
		},
		{
			name: "MissingDiscriminant",
			text: "[Proto]\nPid=1\nPicMap=a\n",
			kind: protoerr.IncompleteRecord,
			line: 1,
		},
		{
			name: "ZeroIdentifier",
			text: "[Proto]\nPid=2\nType=1\nPicMap=a\n\n[Proto]\nPid=0\nType=1\nPicMap=b\n",
			kind: protoerr.IncompleteRecord,
			line: 6,
		},
		{
			name: "EmptySection",
			text: "[Proto]\n",
			kind: protoerr.IncompleteRecord,
			line: 1,
		},
		{
			name: "AliasAndCanonical",
			text: "[Proto]\nProtoId=1\nType=1\nPid=1\nPicMap=a\n",
			kind: protoerr.DuplicateField,
			line: 4,
		},
		{
			name: "DiscriminantTwice",
			text: "[Proto]\nPid=1\nType=1\nType=2\nPicMap=a\n",
			kind: protoerr.DuplicateField,
			line: 4,
		},
		{
			name: "DottedKeyCollision",
			text: "[Proto]\nPid=1\nType=1\nPicMap=a\nGrid.Type=1\nGrid_Type=2\n",
			kind: protoerr.DuplicateField,
			line: 6,
		},
		{
			name: "IdentifierNotNumeric",
			text: "[Proto]\nPid=007\nType=1\nPicMap=a\n",
			kind: protoerr.DecodeMismatch,
			line: 2,
		},
		{
			name: "IdentifierOverflow",
			text: "[Proto]\nPid=70000\nType=1\nPicMap=a\n",
			kind: protoerr.DecodeMismatch,
			line: 2,
		},
		{
			name: "UnexpectedSection",
			text: "[Critter proto]\nPid=1\nType=1\nPicMap=a\n",
			kind: protoerr.DecodeMismatch,
			line: 1,
		},
		{
			name: "DiscriminantOverflow",
			text: "[Proto]\nPid=1\nType=1\nPicMap=a\n\n[Proto]\nPid=2\nType=300\nPicMap=b\n",
			kind: protoerr.DecodeMismatch,
			line: 6,
		},
		{
			name: "DiscriminantNotNumeric",
			text: "[Proto]\nPid=1\nType=weapon\nPicMap=a\n",
			kind: protoerr.DecodeMismatch,
			line: 1,
		},
		{
			name: "MissingRequiredField",
			text: "[Proto]\nPid=1\nType=1\n",
			kind: protoerr.DecodeMismatch,
			line: 1,
		},
		{
			name: "MalformedSection",
			text: "[Proto\n",
			kind: protoerr.MalformedSection,
			line: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := proto.DecodeSource[proto.Item](tt.text, "bad.fopro")
			require.Error(t, err)
			assert.True(t, protoerr.Is(err, tt.kind), "got %v", err)

			var pe *protoerr.Error
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "bad.fopro", pe.File)
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestDecodeSource_MixedCritterSections(t *testing.T) {
	text := "[Proto]\nPid=1\nBaseType=1\n[Critter proto]\nPid=2\nBaseType=1\n"
	_, err := proto.DecodeSource[proto.Critter](text, "mixed.fopro")
	require.Error(t, err)
	assert.True(t, protoerr.Is(err, protoerr.DecodeMismatch))
}

func TestDecodeSource_InvalidCanonicalNumber(t *testing.T) {
	_, err := proto.DecodeSource[proto.Item]("[Proto]\nPid=1\nType=1\nPicMap=a\nRange=1-2\n", "odd.fopro")
	require.Error(t, err)
	assert.True(t, protoerr.Is(err, protoerr.DecodeMismatch))

	var pe *protoerr.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "odd.fopro", pe.File)
	assert.NotZero(t, pe.Line)
}

func TestDecodeCanonical(t *testing.T) {
	t.Run("Aliases", func(t *testing.T) {
		canonical := `[["Proto"]]` + "\nPid=5\nType=1\nPicMapName=\"a\"\n"
		items, err := proto.DecodeCanonical[proto.Item](canonical)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, proto.ID(5), items[0].PID)
		assert.Equal(t, "a", items[0].PicMap)
	})

	t.Run("AliasCollision", func(t *testing.T) {
		canonical := `[["Proto"]]` + "\nPid=5\nProtoId=5\nType=1\nPicMap=\"a\"\n"
		_, err := proto.DecodeCanonical[proto.Item](canonical)
		assert.True(t, protoerr.Is(err, protoerr.DuplicateField), "got %v", err)
	})

	t.Run("MissingIdentifier", func(t *testing.T) {
		canonical := `[["Proto"]]` + "\nType=1\nPicMap=\"a\"\n"
		_, err := proto.DecodeCanonical[proto.Item](canonical)
		assert.True(t, protoerr.Is(err, protoerr.IncompleteRecord), "got %v", err)
	})

	t.Run("StringIdentifier", func(t *testing.T) {
		canonical := `[["Proto"]]` + "\nPid=\"012\"\nType=1\nPicMap=\"a\"\n"
		_, err := proto.DecodeCanonical[proto.Item](canonical)
		assert.True(t, protoerr.Is(err, protoerr.DecodeMismatch), "got %v", err)
	})

	t.Run("NotArrayOfTables", func(t *testing.T) {
		_, err := proto.DecodeCanonical[proto.Item]("Proto=1\n")
		assert.True(t, protoerr.Is(err, protoerr.DecodeMismatch), "got %v", err)
	})

	t.Run("NoSections", func(t *testing.T) {
		items, err := proto.DecodeCanonical[proto.Item]("Version=2\n")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("MixedCritterSections", func(t *testing.T) {
		canonical := `[["Proto"]]` + "\nPid=1\nBaseType=1\n" + `[["Critter proto"]]` + "\nPid=2\nBaseType=1\n"
		_, err := proto.DecodeCanonical[proto.Critter](canonical)
		assert.True(t, protoerr.Is(err, protoerr.DecodeMismatch), "got %v", err)
	})
}

func TestDecodeSource_RoundTrip(t *testing.T) {
	values := map[string]string{
		"Weight":  "250",
		"Cost":    "-12",
		"Zero":    "0",
		"Padded":  "007",
		"Path":    `art\items\knife.frm`,
		"Quote":   `say "hi"`,
		"Decimal": "12.5",
		"Long":    "12345678901234567890",
		"Empty":   "",
	}

	text := "[Proto]\nPid=1\nType=1\nPicMap=a\n"
	for k, v := range values {
		text += k + " = " + v + "\n"
	}

	items, err := proto.DecodeSource[proto.Item](text, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, values, utils.ToStringMap(items[0].Extra))
}
