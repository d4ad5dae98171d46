package commands

import (
	"context"
	"fmt"
	"strconv"

	cli "github.com/urfave/cli/v3"

	"cssb/jsonx"
	"cssb/shape"
)

// Rect prints a rectangle as JSON, either from WIDTH HEIGHT arguments or
// decoded from --from.
func Rect(ctx context.Context, cmd *cli.Command) error {
	if _, err := checkCtx(ctx); err != nil {
		return err
	}

	var r shape.Rectangle
	if from := cmd.String("from"); from != "" {
		var err error
		if r, err = jsonx.Deserialize[shape.Rectangle](from); err != nil {
			return err
		}
	} else {
		if cmd.NArg() != 2 {
			return fmt.Errorf("expected WIDTH HEIGHT, got %d arguments", cmd.NArg())
		}
		w, err := strconv.ParseFloat(cmd.Args().Get(0), 64)
		if err != nil {
			return fmt.Errorf("bad width: %w", err)
		}
		h, err := strconv.ParseFloat(cmd.Args().Get(1), 64)
		if err != nil {
			return fmt.Errorf("bad height: %w", err)
		}
		r = shape.NewRectangle(w, h)
	}

	out, err := jsonx.Serialize(r)
	if err != nil {
		return err
	}
	return printf(cmd, "%s\n", out)
}
