package protodir

// Config holds configuration for locating and reading prototype sources.
type Config struct {
	// Path overrides every other lookup when set.
	Path string `mapstructure:"path" default:""`
	// PathFile is a file whose first line names the root.
	PathFile string `mapstructure:"path_file" default:"proto_path.cfg"`
	// Fallback is used when neither Path nor PathFile resolve.
	Fallback string `mapstructure:"fallback" default:"../FO4RP/proto"`
	// Extension is the source file extension accepted in manifests.
	Extension string `mapstructure:"extension" default:".fopro"`
	// Encoding is the WHATWG label of the source files' text encoding.
	Encoding string `mapstructure:"encoding" default:"utf-8"`
	// MaxPID is the exclusive upper bound of the identifier space.
	MaxPID int `mapstructure:"max_pid" default:"30000"`
	// ItemsList is the item manifest, relative to the root.
	ItemsList string `mapstructure:"items_list" default:"items/items.lst"`
	// CrittersList is the critter manifest, relative to the root.
	CrittersList string `mapstructure:"critters_list" default:"critters/critters.lst"`
}
