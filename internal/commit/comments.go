package commit

import "strings"

const scissors = "------------------------ >8 ------------------------"

// StripComments removes git's comment lines and everything below the scissors line,
// as "git commit --cleanup=scissors" would before reading the message.
func StripComments(raw, commentChar string) string {
	if commentChar == "" {
		commentChar = "#"
	}

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, commentChar+" "+scissors) {
			break
		}
		if strings.HasPrefix(line, commentChar) {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
