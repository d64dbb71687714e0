package application

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/streaktactoe/internal/entity"
)

func printRecent(out io.Writer, recent []*entity.Result, log *slog.Logger) {
	var sb strings.Builder
	sb.WriteString("\nRecent games:\n")

	for _, result := range recent {
		verdict := "draw"
		if !result.IsDraw() {
			verdict = fmt.Sprintf("player %d won", result.WinnerID)
		}

		fmt.Fprintf(&sb, "  %s  %dx%d, %d in a row: %s after %d moves\n",
			result.FinishedAt.Format("2006-01-02 15:04"), result.Size, result.Size, result.WinCondition, verdict, result.Moves)
	}

	if _, err := io.WriteString(out, sb.String()); err != nil {
		log.Error("failed to print recent results", "error", err)
	}
}
