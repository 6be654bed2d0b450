package markup

// Segments converts free-form annotated text into an ordered list of
// modification segments. It never fails: text without markers or tags yields
// an empty list.
//
// The format lets an author tag the first affected word and rely on the next
// timestamp marker to close the interval. Whenever a tagged span starts past
// the running cursor, a neutral gap span is emitted first, so the prosody
// spans always form a contiguous, non-overlapping partition of the timeline.
func Segments(text string) []Segment {
	markers := ScanMarkers(text)

	var out []Segment
	accumulated := 0.0

	// Region before the first marker, or the whole text if there is none.
	pre := text
	if len(markers) > 0 {
		pre = text[:markers[0].Offset]
	}
	if hasProsodyTag(pre) {
		tags := extractProsody(pre)
		end := OpenEnd()
		if len(markers) > 0 {
			end = ClosedAt(markers[0].Time)
			accumulated = markers[0].Time
		}
		out = append(out, Prosody{Start: 0, End: end, Pitch: tags.Pitch, Volume: tags.Volume, Speed: tags.Speed})
	}
	if d, ok := extractSilence(pre); ok {
		out = append(out, Silence{Start: accumulated, Duration: d})
		accumulated += d
	}

	for i, m := range markers {
		spanEnd := len(text)
		if i+1 < len(markers) {
			spanEnd = markers[i+1].Offset
		}
		span := text[m.Offset:spanEnd]

		if hasProsodyTag(span) {
			if m.Time > accumulated {
				// Un-annotated gap: emit a neutral span so the partition
				// stays complete for the effects collaborator.
				out = append(out, Prosody{Start: accumulated, End: ClosedAt(m.Time), Speed: NeutralSpeed})
			}
			tags := extractProsody(span)
			end := OpenEnd()
			if i+1 < len(markers) {
				end = ClosedAt(markers[i+1].Time)
			}
			out = append(out, Prosody{Start: m.Time, End: end, Pitch: tags.Pitch, Volume: tags.Volume, Speed: tags.Speed})
			if end.Open {
				// An open span has no closing time to advance to; the span's
				// own start is the last well-defined cursor position.
				accumulated = m.Time
			} else {
				accumulated = end.Seconds
			}
		}

		// Independent of the prosody check: the same span may also insert a
		// pause at the current cursor position.
		if d, ok := extractSilence(span); ok {
			out = append(out, Silence{Start: accumulated, Duration: d})
			accumulated += d
		}
	}

	return out
}
