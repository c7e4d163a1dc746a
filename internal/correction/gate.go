// Package correction implements the per-message policy pipeline: decide
// whether an outgoing message is eligible for correction, call the oracle,
// and judge whether the proposed rewrite is safe to apply.
//
// The pipeline fails open. Whatever goes wrong — settings lookup, oracle
// timeout, edit rejection — the original message is left untouched and the
// user never sees an error. Availability of the message channel must never
// depend on the correction feature.
package correction

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/tgpolish/internal/logging"
	"github.com/dmitrijs2005/tgpolish/internal/models"
	"github.com/dmitrijs2005/tgpolish/internal/oracle"
	"github.com/dmitrijs2005/tgpolish/internal/telegram"
)

// SettingsSource provides the per-user policy the gate consults on every
// message event. Implementations are expected to be stateless and reentrant.
type SettingsSource interface {
	Settings(ctx context.Context, userID int64) (*models.UserSettings, error)
}

// Editor is the slice of the protocol client the gate needs to apply an
// accepted rewrite.
type Editor interface {
	EditMessage(ctx context.Context, ref telegram.MessageRef, text string) error
}

// Gate evaluates outgoing messages and edits them in place when the oracle's
// candidate passes the significance policy.
type Gate struct {
	settings      SettingsSource
	oracle        oracle.Oracle
	oracleTimeout time.Duration
	logger        logging.Logger
}

// NewGate wires the pipeline. oracleTimeout bounds a single oracle call;
// exceeding it counts as oracle failure for that message (no retry).
func NewGate(settings SettingsSource, o oracle.Oracle, oracleTimeout time.Duration, logger logging.Logger) *Gate {
	return &Gate{
		settings:      settings,
		oracle:        o,
		oracleTimeout: oracleTimeout,
		logger:        logger.With("module", "correction_gate"),
	}
}

// Process handles one outgoing-message event. Called once per event, in
// arrival order, from the connection's pump goroutine.
func (g *Gate) Process(ctx context.Context, userID int64, editor Editor, msg telegram.OutgoingMessage) {

	settings, err := g.settings.Settings(ctx, userID)
	if err != nil {
		g.logger.Error(ctx, "settings lookup failed, skipping message", "user_id", userID, "error", err.Error())
		return
	}

	if !g.eligible(settings, msg.Text) {
		return
	}

	candidate, err := g.callOracle(ctx, msg.Text)
	if err != nil {
		g.logger.Warn(ctx, "oracle failed, leaving message untouched", "user_id", userID, "error", err.Error())
		return
	}

	if !significantChange(msg.Text, candidate) {
		return
	}

	if err := editor.EditMessage(ctx, msg.Ref, candidate); err != nil {
		g.logger.Error(ctx, "message edit failed", "user_id", userID, "error", err.Error())
		return
	}

	g.logger.Info(ctx, "message corrected", "user_id", userID)
}

// eligible applies the short-circuit checks that precede any oracle call.
func (g *Gate) eligible(settings *models.UserSettings, text string) bool {
	if !settings.AutoCorrectEnabled {
		return false
	}
	if utf8.RuneCountInString(text) < settings.MinMessageLength {
		return false
	}
	if strings.HasPrefix(text, "/") {
		return false
	}
	if !hasLinguisticContent(text) {
		return false
	}
	return true
}

func (g *Gate) callOracle(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.oracleTimeout)
	defer cancel()
	return g.oracle.Correct(ctx, text)
}
