package checkbook

import "slices"

// Book is the application session: the two collections loaded from one
// workbook, each keyed by id.
//
// A Book has exactly one owner and is mutated strictly sequentially:
// load, then reconcile, then save. Ids come from the workbook rows; the
// book never generates one.
type Book struct {
	path      string
	records   map[uint32]*Record
	schedules map[uint32]*Schedule
}

// NewBook creates an empty book, bound to no file yet.
func NewBook() *Book {
	return &Book{
		records:   make(map[uint32]*Record),
		schedules: make(map[uint32]*Schedule),
	}
}

// Path returns the workbook file this book was loaded from.
func (b *Book) Path() string { return b.path }

// Record returns the record with this id, or nil if unknown.
func (b *Book) Record(id uint32) *Record { return b.records[id] }

// Schedule returns the schedule with this id, or nil if unknown.
func (b *Book) Schedule(id uint32) *Schedule { return b.schedules[id] }

// loadRecords replaces the record collection wholesale from sheet rows.
// The first row is the header and is skipped. On error the previous
// collection is left untouched.
func (b *Book) loadRecords(rows [][]string) error {
	records := make(map[uint32]*Record)
	for _, row := range skipHeader(rows) {
		r, err := RecordFromRow(row)
		if err != nil {
			return err
		}
		records[r.ID] = r
	}
	b.records = records
	return nil
}

// loadSchedules replaces the schedule collection wholesale from sheet
// rows, skipping the header row.
func (b *Book) loadSchedules(rows [][]string) error {
	schedules := make(map[uint32]*Schedule)
	for _, row := range skipHeader(rows) {
		s, err := ScheduleFromRow(row)
		if err != nil {
			return err
		}
		schedules[s.ID] = s
	}
	b.schedules = schedules
	return nil
}

// Records returns the records in ascending id order. Any walk that must
// be deterministic (reconciling, saving, listing) goes through here
// rather than over the map.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.records))
	for _, id := range sortedKeys(b.records) {
		out = append(out, b.records[id])
	}
	return out
}

// Schedules returns the schedules in ascending id order.
func (b *Book) Schedules() []*Schedule {
	out := make([]*Schedule, 0, len(b.schedules))
	for _, id := range sortedKeys(b.schedules) {
		out = append(out, b.schedules[id])
	}
	return out
}

func sortedKeys[V any](m map[uint32]V) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func skipHeader(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}
