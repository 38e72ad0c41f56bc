// Package header parses the metadata section of a VCF file: the structured
// ##INFO, ##FILTER, ##ALT, ##FORMAT and ##contig declarations and the
// generic ##key=value lines that precede the column header. A Store
// accumulates the typed records for one file in insertion order and keeps
// the raw lines for verbatim re-emission.
package header

import (
	"strings"

	"go.uber.org/zap"
)

// orderedMap is an insertion-ordered string-keyed map. Replacing an existing
// key keeps its original position.
type orderedMap[V any] struct {
	keys   []string
	values map[string]V
}

func newOrderedMap[V any]() *orderedMap[V] {
	return &orderedMap[V]{values: make(map[string]V)}
}

// set stores value under key and reports whether an earlier value was
// replaced.
func (m *orderedMap[V]) set(key string, value V) bool {
	_, replaced := m.values[key]
	if !replaced {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return replaced
}

func (m *orderedMap[V]) get(key string) (V, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *orderedMap[V]) all() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

func (m *orderedMap[V]) len() int {
	return len(m.keys)
}

// LineOutcome is the result of feeding one line to a Store.
type LineOutcome uint8

const (
	// LineAccepted means the line was a metadata line and was recorded.
	LineAccepted LineOutcome = iota
	// LineHeaderEnded means the line does not carry the marker; the store is
	// finalized and the line stays with the caller.
	LineHeaderEnded
)

func (o LineOutcome) String() string {
	if o == LineHeaderEnded {
		return "header ended"
	}
	return "accepted"
}

// Store accumulates the parsed header of a single VCF file. Records live in
// five per-kind collections keyed by ID plus one for generic metadata, all
// in insertion order. A Store is not safe for concurrent use; parse each
// file with its own instance.
type Store struct {
	infos    *orderedMap[Info]
	filters  *orderedMap[Filter]
	alts     *orderedMap[Alt]
	formats  *orderedMap[Format]
	contigs  *orderedMap[Contig]
	generics *orderedMap[Generic]

	rawLines  []string
	finalized bool
	logger    *zap.Logger
}

// NewStore returns an empty store. Logging defaults to a no-op logger;
// attach one with SetLogger to surface duplicate and reserved-type warnings.
func NewStore() *Store {
	return &Store{
		infos:    newOrderedMap[Info](),
		filters:  newOrderedMap[Filter](),
		alts:     newOrderedMap[Alt](),
		formats:  newOrderedMap[Format](),
		contigs:  newOrderedMap[Contig](),
		generics: newOrderedMap[Generic](),
		logger:   zap.NewNop(),
	}
}

// SetLogger sets the logger used for header quality warnings.
func (s *Store) SetLogger(logger *zap.Logger) {
	s.logger = logger
}

// Ingest consumes one line of input. Metadata lines are parsed and recorded;
// the first line without the ## marker finalizes the store, is not consumed,
// and reports LineHeaderEnded. Calling Ingest on a finalized store is a
// contract violation and panics. A parse error leaves the line unrecorded;
// the header past a malformed declaration cannot be trusted, so callers
// abort the file.
func (s *Store) Ingest(line string) (LineOutcome, error) {
	if s.finalized {
		panic("header: Ingest on a finalized store")
	}
	if !strings.HasPrefix(line, Marker) {
		s.finalized = true
		return LineHeaderEnded, nil
	}

	switch Classify(line) {
	case LineInfo:
		info, err := ParseInfo(line)
		if err != nil {
			return LineAccepted, err
		}
		s.warnReserved(TagInfo, info.ID, info.Type, ReservedInfoType)
		if s.infos.set(info.ID, info) {
			s.warnDuplicate(TagInfo, info.ID)
		}
	case LineFilter:
		filter, err := ParseFilter(line)
		if err != nil {
			return LineAccepted, err
		}
		if s.filters.set(filter.ID, filter) {
			s.warnDuplicate(TagFilter, filter.ID)
		}
	case LineAlt:
		alt, err := ParseAlt(line)
		if err != nil {
			return LineAccepted, err
		}
		if s.alts.set(alt.ID, alt) {
			s.warnDuplicate(TagAlt, alt.ID)
		}
	case LineFormat:
		format, err := ParseFormat(line)
		if err != nil {
			return LineAccepted, err
		}
		s.warnReserved(TagFormat, format.ID, format.Type, ReservedFormatType)
		if s.formats.set(format.ID, format) {
			s.warnDuplicate(TagFormat, format.ID)
		}
	case LineContig:
		contig, err := ParseContig(line)
		if err != nil {
			return LineAccepted, err
		}
		if s.contigs.set(contig.ID, contig) {
			s.warnDuplicate(TagContig, contig.ID)
		}
	default:
		generic := ParseGeneric(line)
		if s.generics.set(generic.Key, generic) && IsSingular(generic.Key) {
			s.logger.Warn("singular metadata key repeated",
				zap.String("key", generic.Key))
		}
	}

	s.rawLines = append(s.rawLines, line)
	return LineAccepted, nil
}

func (s *Store) warnReserved(tag, id string, declared ValueType, reserved map[string]ValueType) {
	if want, ok := reserved[id]; ok && want != declared {
		s.logger.Warn("declared type contradicts reserved definition",
			zap.String("tag", tag),
			zap.String("id", id),
			zap.String("declared", declared.String()),
			zap.String("reserved", want.String()))
	}
}

func (s *Store) warnDuplicate(tag, id string) {
	s.logger.Warn("duplicate declaration replaced",
		zap.String("tag", tag),
		zap.String("id", id))
}

// Finalize marks the header complete for inputs that end while still inside
// the header section. Idempotent.
func (s *Store) Finalize() {
	s.finalized = true
}

// Finalized reports whether the header section has ended.
func (s *Store) Finalized() bool {
	return s.finalized
}

// Info returns the INFO declaration with the given ID.
func (s *Store) Info(id string) (Info, bool) {
	return s.infos.get(id)
}

// Infos returns all INFO declarations in file order.
func (s *Store) Infos() []Info {
	return s.infos.all()
}

// Filter returns the FILTER declaration with the given ID.
func (s *Store) Filter(id string) (Filter, bool) {
	return s.filters.get(id)
}

// Filters returns all FILTER declarations in file order.
func (s *Store) Filters() []Filter {
	return s.filters.all()
}

// Alt returns the ALT declaration with the given ID.
func (s *Store) Alt(id string) (Alt, bool) {
	return s.alts.get(id)
}

// Alts returns all ALT declarations in file order.
func (s *Store) Alts() []Alt {
	return s.alts.all()
}

// Format returns the FORMAT declaration with the given ID.
func (s *Store) Format(id string) (Format, bool) {
	return s.formats.get(id)
}

// Formats returns all FORMAT declarations in file order.
func (s *Store) Formats() []Format {
	return s.formats.all()
}

// Contig returns the contig declaration with the given ID.
func (s *Store) Contig(id string) (Contig, bool) {
	return s.contigs.get(id)
}

// Contigs returns all contig declarations in file order.
func (s *Store) Contigs() []Contig {
	return s.contigs.all()
}

// Generic returns the generic metadata stored under key.
func (s *Store) Generic(key string) (Generic, bool) {
	return s.generics.get(key)
}

// Generics returns all generic metadata in file order.
func (s *Store) Generics() []Generic {
	return s.generics.all()
}

// RawLines returns every accepted metadata line verbatim, in file order,
// for consumers that re-emit the header unchanged.
func (s *Store) RawLines() []string {
	return s.rawLines
}

// FileFormat returns the value of the fileformat line, or "" when absent.
func (s *Store) FileFormat() string {
	g, ok := s.generics.get("fileformat")
	if !ok {
		return ""
	}
	return g.Value
}

// Len returns the total number of stored records across all kinds.
func (s *Store) Len() int {
	return s.infos.len() + s.filters.len() + s.alts.len() +
		s.formats.len() + s.contigs.len() + s.generics.len()
}
