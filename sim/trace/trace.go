package trace

// TraceLevel controls the verbosity of boarding tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelReleases captures one record per release decision.
	TraceLevelReleases TraceLevel = "releases"
	// TraceLevelTicks additionally captures the aisle state after every tick.
	TraceLevelTicks TraceLevel = "ticks"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:     true,
	TraceLevelReleases: true,
	TraceLevelTicks:    true,
	"":                 true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel `json:"level"`
}

// BoardingTrace collects release and tick records during one episode.
type BoardingTrace struct {
	Config   TraceConfig     `json:"config"`
	Releases []ReleaseRecord `json:"releases"`
	Ticks    []TickRecord    `json:"ticks,omitempty"`
}

// NewBoardingTrace creates a BoardingTrace ready for recording.
func NewBoardingTrace(config TraceConfig) *BoardingTrace {
	return &BoardingTrace{
		Config:   config,
		Releases: make([]ReleaseRecord, 0),
		Ticks:    make([]TickRecord, 0),
	}
}

// RecordsTicks reports whether per-tick records are wanted.
func (bt *BoardingTrace) RecordsTicks() bool {
	return bt != nil && bt.Config.Level == TraceLevelTicks
}

// RecordRelease appends a release record.
func (bt *BoardingTrace) RecordRelease(record ReleaseRecord) {
	bt.Releases = append(bt.Releases, record)
}

// RecordTick appends a tick record.
func (bt *BoardingTrace) RecordTick(record TickRecord) {
	bt.Ticks = append(bt.Ticks, record)
}
