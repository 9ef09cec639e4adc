package mappers

import "time"

const dateLayout = "2006-01-02"

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func millisPtrToTime(ms *int64) time.Time {
	if ms == nil {
		return time.Time{}
	}
	return millisToTime(*ms)
}

func timeToMillisPtr(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func dateToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func stringToDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
