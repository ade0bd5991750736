package player

import (
	"context"
	"regexp"
	"unicode/utf8"

	"kiosk_backend/internal/model"
)

const maxNameLength = 100

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Register валидирует и сохраняет нового игрока.
// Игрок после регистрации не редактируется
func (s *serv) Register(ctx context.Context, player *model.Player) (*model.Player, error) {
	var messages []string

	if len(player.Name) == 0 {
		messages = append(messages, "Name can't be blank")
	} else if utf8.RuneCountInString(player.Name) > maxNameLength {
		messages = append(messages, "Name is too long (maximum is 100 characters)")
	}

	if len(player.Email) == 0 {
		messages = append(messages, "Email can't be blank")
	} else if !emailRegexp.MatchString(player.Email) {
		messages = append(messages, "Email is invalid")
	}

	if len(player.Phone) == 0 {
		messages = append(messages, "Phone can't be blank")
	}

	if len(messages) > 0 {
		return nil, model.NewValidationError(messages...)
	}

	_, err := s.repo.CreatePlayer(ctx, player)
	if err != nil {
		return nil, err
	}

	return player, nil
}
