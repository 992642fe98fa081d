package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// readChoice prompts until the player enters an integer in [1, count].
// Lines of any length are accepted; anything unparsable is re-prompted.
func (s *SoftSkillsQuiz) readChoice(count int) (int, error) {
	for {
		renderPrompt(s.out, s.user.Name, count)

		line, err := s.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("read choice: %w", err)
			}
			if line == "" {
				return 0, ErrInputClosed
			}
			// Last line without a trailing newline.
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			renderNotANumber(s.out)
			continue
		}
		if choice < 1 || choice > count {
			renderOutOfRange(s.out, count)
			continue
		}
		return choice, nil
	}
}
