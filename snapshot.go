package favorite

// Snapshot is a pre-fetched set of records. Query operations that receive a
// snapshot answer from it instead of the store.
type Snapshot struct {
	Records []Record
}

// NewSnapshot copies records into a snapshot.
func NewSnapshot(records []Record) *Snapshot {
	copied := make([]Record, len(records))
	copy(copied, records)
	return &Snapshot{Records: copied}
}

// Where returns a snapshot of the records matching filter.
func (s *Snapshot) Where(filter Filter) *Snapshot {
	out := &Snapshot{}
	for _, r := range s.Records {
		if matches(r, filter) {
			out.Records = append(out.Records, r)
		}
	}
	return out
}

func (s *Snapshot) Contains(actorID, targetType, targetID string) bool {
	for _, r := range s.Records {
		if r.ActorID == actorID && r.TargetType == targetType && r.TargetID == targetID {
			return true
		}
	}
	return false
}

func (s *Snapshot) Len() int {
	return len(s.Records)
}

// ActorIDs returns the distinct actor ids in record order.
func (s *Snapshot) ActorIDs() []string {
	return distinct(s.Records, func(r Record) string { return r.ActorID })
}

// TargetIDs returns the distinct target ids in record order.
func (s *Snapshot) TargetIDs() []string {
	return distinct(s.Records, func(r Record) string { return r.TargetID })
}

func matches(r Record, f Filter) bool {
	if f.ActorID != "" && r.ActorID != f.ActorID {
		return false
	}
	if f.TargetType != "" && r.TargetType != f.TargetType {
		return false
	}
	if f.TargetID != "" && r.TargetID != f.TargetID {
		return false
	}
	return true
}

func distinct(records []Record, key func(Record) string) []string {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		ids = append(ids, k)
	}
	return ids
}
