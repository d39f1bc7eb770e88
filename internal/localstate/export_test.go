package localstate

import "time"

func (s *SQLiteStore) SetNow(now func() time.Time) { s.now = now }
