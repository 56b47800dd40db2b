package proto

// ID is a prototype identifier. Zero is never a valid identifier.
type ID = uint16

// Record is a decoded prototype.
type Record interface {
	// ProtoID returns the record's identifier.
	ProtoID() ID
	// Schema describes the record's shape. It must not depend on the receiver's value.
	Schema() Schema
}

var itemSchema = Schema{
	Category:     "items",
	Sections:     []string{"Proto"},
	Identifier:   Field{Name: "ProtoId", Aliases: []string{"Pid"}},
	Discriminant: Field{Name: "Type"},
	Fields: []Field{
		{Name: "PicMap", Aliases: []string{"PicMapName"}, Required: true},
		{Name: "Flags"},
		{Name: "Grid_Type"},
	},
}

// Item is an item prototype.
type Item struct {
	PID      ID             `mapstructure:"ProtoId" json:"ProtoId"`
	Type     uint8          `mapstructure:"Type" json:"Type"`
	PicMap   string         `mapstructure:"PicMap" json:"PicMap"`
	Flags    *uint32        `mapstructure:"Flags" json:"Flags"`
	GridType *uint8         `mapstructure:"Grid_Type" json:"Grid_Type"`
	Extra    map[string]any `mapstructure:",remain" json:"Extra,omitempty"`
}

func (i Item) ProtoID() ID { return i.PID }

func (Item) Schema() Schema { return itemSchema }

var critterSchema = Schema{
	Category:     "critters",
	Sections:     []string{"Proto", "Critter proto"},
	Identifier:   Field{Name: "ProtoId", Aliases: []string{"Pid"}},
	Discriminant: Field{Name: "BaseType", Aliases: []string{"ST_BASE_CRTYPE"}},
}

// Critter is a critter prototype.
type Critter struct {
	PID      ID             `mapstructure:"ProtoId" json:"ProtoId"`
	BaseType uint32         `mapstructure:"BaseType" json:"BaseType"`
	Extra    map[string]any `mapstructure:",remain" json:"Extra,omitempty"`
}

func (c Critter) ProtoID() ID { return c.PID }

func (Critter) Schema() Schema { return critterSchema }
