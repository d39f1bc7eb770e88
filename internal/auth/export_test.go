package auth

import "time"

func (t *Tokens) SetNow(now func() time.Time) { t.now = now }
