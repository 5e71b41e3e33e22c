package chat

import "strings"

// DefaultTargetSpeaker is used when the participants header names no child.
const DefaultTargetSpeaker = "CHI"

const participantsPrefix = "@participants:"

// SpeakerOf returns the speaker code of an utterance line, the text between
// the leading '*' and the first ':'. It returns "" when the line has no ':'.
func SpeakerOf(utterance string) string {
	end := strings.IndexByte(utterance, ':')
	if end < 1 {
		return ""
	}
	return utterance[1:end]
}

// TargetSpeaker returns the code of the first participant whose description
// mentions "child", e.g. "CHI Target_Child" in
//
//	@Participants:	CHI Target_Child, MOT Mother
//
// It falls back to DefaultTargetSpeaker.
func TargetSpeaker(headers []string) string {
	for _, line := range headers {
		if !strings.HasPrefix(strings.ToLower(line), participantsPrefix) {
			continue
		}
		for _, participant := range strings.Split(line[len(participantsPrefix):], ",") {
			if !strings.Contains(strings.ToLower(participant), "child") {
				continue
			}
			if fields := strings.Fields(participant); len(fields) > 0 {
				return fields[0]
			}
		}
	}
	return DefaultTargetSpeaker
}
