package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/erosion-server/internal/adapter"
	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/models"
)

// Usage lists the supported commands.
const Usage = `commands:
  version
  register <handle> <username> <password>
  maps
  layout <map-id>
  submit <username> <password> <map-id> <final-score> <score> <soil-bonus> <location-bonus>
  scores <username> <password>`

type command struct {
	args int
	run  func(ctx context.Context, args []string) error
}

type App struct {
	api      adapter.APIAdapter
	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

func NewApp(api adapter.APIAdapter, out io.Writer, logger *logger.Logger) *App {
	a := &App{api: api, out: out, logger: logger}
	a.commands = map[string]command{
		"version":  {args: 0, run: a.version},
		"register": {args: 3, run: a.register},
		"maps":     {args: 0, run: a.maps},
		"layout":   {args: 1, run: a.layout},
		"submit":   {args: 7, run: a.submit},
		"scores":   {args: 2, run: a.scores},
	}
	return a
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	if len(args)-1 != cmd.args {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrWrongArguments, args[0], cmd.args, len(args)-1)
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

func (a *App) version(ctx context.Context, _ []string) error {
	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, v)
	return err
}

func (a *App) register(ctx context.Context, args []string) error {
	user, err := a.api.Register(ctx, models.NewUser{Handle: args[0], Username: args[1], Password: args[2]})
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) maps(ctx context.Context, _ []string) error {
	maps, err := a.api.ListMaps(ctx)
	if err != nil {
		return err
	}
	return a.print(maps)
}

func (a *App) layout(ctx context.Context, args []string) error {
	mapID, err := parseInt(args[0])
	if err != nil {
		return err
	}
	layout, err := a.api.GetMapLayout(ctx, mapID)
	if err != nil {
		return err
	}
	return a.print(layout)
}

// submit logs in and records a game result for the logged in player.
func (a *App) submit(ctx context.Context, args []string) error {
	input, err := parseScore(args[2:])
	if err != nil {
		return err
	}
	if _, err = a.login(ctx, args[0], args[1]); err != nil {
		return err
	}
	score, err := a.api.CreateScore(ctx, input)
	if err != nil {
		return err
	}
	return a.print(score)
}

// scores logs in and prints the player's own score history.
func (a *App) scores(ctx context.Context, args []string) error {
	token, err := a.login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	scores, err := a.api.ListUserScores(ctx, token.UserID)
	if err != nil {
		return err
	}
	return a.print(scores)
}

func (a *App) login(ctx context.Context, username, password string) (models.Token, error) {
	token, err := a.api.Login(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		return models.Token{}, fmt.Errorf("login: %w", err)
	}
	a.logger.Debug().Int64("user_id", token.UserID).Msg("logged in")
	return token, nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseScore reads map id, final score, score, soil bonus and location
// bonus in that order.
func parseScore(args []string) (models.ScoreInput, error) {
	mapID, err := parseInt(args[0])
	if err != nil {
		return models.ScoreInput{}, err
	}

	ints := make([]int, 3)
	for i, raw := range args[1:4] {
		v, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return models.ScoreInput{}, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
		}
		ints[i] = v
	}

	location, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return models.ScoreInput{}, fmt.Errorf("%w: %q", ErrInvalidNumber, args[4])
	}

	return models.ScoreInput{
		MapID:         &mapID,
		FinalScore:    &ints[0],
		Score:         &ints[1],
		SoilBonus:     &ints[2],
		LocationBonus: &location,
	}, nil
}

func parseInt(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return v, nil
}
