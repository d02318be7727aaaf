package activities

import (
	"context"
	"net/http"

	"github.com/joeydtaylor/steeze-activities/pkg/codec"
	"github.com/joeydtaylor/steeze-activities/pkg/core"
	"github.com/joeydtaylor/steeze-activities/pkg/middleware/metrics"
	"github.com/joeydtaylor/steeze-activities/pkg/registry"
	"go.uber.org/zap"
)

// Handler names referenced from the manifest.
const (
	HandlerList       = "activities.list"
	HandlerSignup     = "activities.signup"
	HandlerUnregister = "activities.unregister"
)

type API struct {
	reg      *registry.Registry
	notifier *Notifier
	log      *zap.Logger
}

func New(reg *registry.Registry, notifier *Notifier, log *zap.Logger) *API {
	if log == nil {
		log = zap.NewNop()
	}
	snap := reg.List()
	for _, name := range snap.Names() {
		a, _ := snap.Get(name)
		metrics.SetParticipants(name, len(a.Participants))
	}
	return &API{reg: reg, notifier: notifier, log: log}
}

// Register binds the API's handlers into hs under the manifest names.
func (a *API) Register(hs *core.Handlers) error {
	for name, fn := range map[string]core.InprocHandler{
		HandlerList:       a.list,
		HandlerSignup:     a.signup,
		HandlerUnregister: a.unregister,
	} {
		if err := hs.Register(name, fn); err != nil {
			return err
		}
	}
	return nil
}

type messageResponse struct {
	Message string `json:"message"`
}

func (a *API) list(_ context.Context, _ core.Request) ([]byte, int, error) {
	out, err := codec.JSONStrict.Marshal(a.reg.List())
	if err != nil {
		return nil, 0, err
	}
	return out, http.StatusOK, nil
}

func (a *API) signup(ctx context.Context, in core.Request) ([]byte, int, error) {
	return a.change(ctx, in, metrics.OpSignup, a.reg.Signup)
}

func (a *API) unregister(ctx context.Context, in core.Request) ([]byte, int, error) {
	return a.change(ctx, in, metrics.OpUnregister, a.reg.Unregister)
}

func (a *API) change(ctx context.Context, in core.Request, op string, apply func(name, email string) (registry.Receipt, error)) ([]byte, int, error) {
	req, verr := parseRosterRequest(in)
	if verr != nil {
		metrics.ObserveRosterChange("", op, metrics.OutcomeInvalid)
		return nil, 0, verr
	}

	rc, err := apply(req.Activity, req.Email)
	if err != nil {
		he, outcome := toHTTPError(err)
		if he == nil {
			return nil, 0, err
		}
		metrics.ObserveRosterChange(req.Activity, op, outcome)
		a.log.Info("roster change rejected",
			zap.String("operation", op),
			zap.String("activity", req.Activity),
			zap.String("outcome", outcome),
		)
		return nil, 0, he
	}

	metrics.ObserveRosterChange(rc.Activity, op, metrics.OutcomeOK)
	metrics.SetParticipants(rc.Activity, rc.Participants)
	a.log.Info("roster changed",
		zap.String("operation", op),
		zap.String("activity", rc.Activity),
		zap.Int("participants", rc.Participants),
	)
	a.notifier.Notify(ctx, RosterEvent{
		Type:         op,
		Activity:     rc.Activity,
		Email:        rc.Email,
		Participants: rc.Participants,
	})

	out, err := codec.JSONStrict.Marshal(messageResponse{Message: rc.Message})
	if err != nil {
		return nil, 0, err
	}
	return out, http.StatusOK, nil
}
