package studio

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/baucmind/site/internal/platform/schedule"
	"github.com/baucmind/site/internal/platform/timeouts"
	"github.com/baucmind/site/internal/services/site/platform/pagerender"
	"github.com/baucmind/site/internal/services/site/platform/requestmeta"
	"github.com/baucmind/site/internal/services/site/platform/weberror"
	sitetemplates "github.com/baucmind/site/internal/services/site/templates"
	"github.com/baucmind/site/internal/studio/registry"
	"github.com/baucmind/site/internal/studio/shell"
	"github.com/baucmind/site/internal/studio/steps"
	"golang.org/x/net/websocket"
)

var errCrossOriginSocket = errors.New("cross-origin check stream")

// checkRun is one scripted check board and the step that shows it.
type checkRun struct {
	script steps.Script
	step   string
}

func lookupCheckRun(run string) (checkRun, bool) {
	switch run {
	case sitetemplates.CheckRunPreflight:
		return checkRun{script: steps.PreflightScript(), step: registry.StepPreflight}, true
	case sitetemplates.CheckRunBrandGuard:
		return checkRun{script: steps.BrandGuardScript(), step: registry.StepAssembly}, true
	default:
		return checkRun{}, false
	}
}

// handleChecks streams a scripted check run over a WebSocket. Each update is
// an HTML fragment whose out-of-band ids patch the board in place. One socket
// is one view: the run starts on connect and stops when the socket closes.
func (h handlers) handleChecks(w http.ResponseWriter, r *http.Request) {
	run := strings.TrimSpace(r.PathValue("run"))
	target, ok := lookupCheckRun(run)
	if !ok {
		weberror.WriteAppError(w, r, http.StatusNotFound, "", h.deps)
		return
	}
	page := pagerender.PageContext(w, r, h.deps, shell.StudioEntry(target.step))
	script := target.script.Scaled(h.deps.CheckTimeScale)

	server := websocket.Server{
		Handshake: func(_ *websocket.Config, req *http.Request) error {
			if requestmeta.Origin(req) == requestmeta.ProvenanceCrossOrigin {
				return errCrossOriginSocket
			}
			return nil
		},
		Handler: func(conn *websocket.Conn) {
			h.streamChecks(conn, page, run, script)
		},
	}
	server.ServeHTTP(w, r)
}

func (h handlers) streamChecks(conn *websocket.Conn, page sitetemplates.PageContext, run string, script steps.Script) {
	defer func() {
		_ = conn.Close()
	}()

	ctx, cancel := context.WithCancel(conn.Request().Context())
	defer cancel()
	sched := schedule.New(ctx)
	defer sched.Stop()

	// Nothing the client sends matters; reading only detects the close.
	go func() {
		_, _ = io.Copy(io.Discard, conn)
		cancel()
	}()

	finished := make(chan struct{})
	remaining := len(script.Updates)
	if remaining == 0 {
		close(finished)
	}
	script.Run(sched, func(_ context.Context, board steps.Board, u steps.Update) {
		if err := sendCheckUpdate(conn, page, run, board, u); err != nil {
			h.deps.Logf("check stream %s: %v", run, err)
			cancel()
			return
		}
		remaining--
		if remaining == 0 {
			close(finished)
		}
	})

	select {
	case <-ctx.Done():
		return
	case <-finished:
	}
	linger := h.deps.SocketLinger
	if linger <= 0 {
		linger = timeouts.SocketLinger
	}
	timer := time.NewTimer(linger)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func sendCheckUpdate(conn *websocket.Conn, page sitetemplates.PageContext, run string, board steps.Board, u steps.Update) error {
	var b strings.Builder
	if err := sitetemplates.CheckUpdate(page, run, board, u).Render(&b); err != nil {
		return err
	}
	if err := conn.SetWriteDeadline(time.Now().Add(timeouts.SocketWrite)); err != nil {
		return err
	}
	return websocket.Message.Send(conn, b.String())
}
