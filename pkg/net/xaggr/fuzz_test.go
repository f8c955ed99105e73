package xaggr

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func FuzzAggregate(f *testing.F) {
	f.Add("192.0.2.0/25 192.0.2.128/25", 32, 32)
	f.Add("0.0.0.0/0 192.0.2.0/24", 24, 8)
	f.Add("2001:db8::/32 2001:db8::/32 2001:db9::/32", 128, 128)
	f.Add("192.0.2.1 192.0.2.2/31", 32, 0)
	f.Add("WRONG 192.0.2.0/24", 32, 32)
	f.Add("192.0.2.0/24 2001:db8::/32", 32, 32)

	f.Fuzz(func(t *testing.T, input string, maxLength, truncate int) {
		raw := strings.Fields(input)
		opts := []Option{WithMaxLength(maxLength), WithTruncate(truncate)}

		out, err := Aggregate(context.Background(), raw, opts...)
		if err != nil {
			if out != nil {
				t.Fatalf("partial result %v alongside error %v", out, err)
			}
			if !errors.Is(err, ErrParse) && !errors.Is(err, ErrVersionMismatch) && !errors.Is(err, ErrInvalidOption) {
				t.Fatalf("unexpected error kind: %v", err)
			}
			return
		}

		input2, err := Normalize(raw, opts...)
		if err != nil {
			t.Fatalf("Normalize failed after Aggregate succeeded: %v", err)
		}
		if err := Verify(input2, out); err != nil {
			t.Fatalf("Verify(%v): %v", raw, err)
		}
	})
}
