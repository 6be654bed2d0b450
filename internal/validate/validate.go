package validate

import (
	"fmt"

	"github.com/nguyentantai21042004/prosody-flow/internal/markup"
)

// Plan checks a modification plan for values the core deliberately does not
// validate: negative times, inverted ranges, non-positive speed or duration.
// One error per offending segment; an empty result means the plan is sound.
func Plan(segments []markup.Segment) []error {
	var errs []error

	for i, seg := range segments {
		switch s := seg.(type) {
		case markup.Prosody:
			if s.Start < 0 {
				errs = append(errs, fmt.Errorf("segment %d: start time %.3f is negative", i, s.Start))
			}
			if !s.End.Open && s.Start >= s.End.Seconds {
				errs = append(errs, fmt.Errorf("segment %d: start %.3f must be before end %.3f", i, s.Start, s.End.Seconds))
			}
			if s.Speed <= 0 {
				errs = append(errs, fmt.Errorf("segment %d: speed multiplier %.3f must be positive", i, s.Speed))
			}
		case markup.Silence:
			if s.Start < 0 {
				errs = append(errs, fmt.Errorf("segment %d: silence start %.3f is negative", i, s.Start))
			}
			if s.Duration <= 0 {
				errs = append(errs, fmt.Errorf("segment %d: silence duration %.3f must be positive", i, s.Duration))
			}
		}
	}

	return errs
}
