package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgauth "github.com/stockless/stockless-backend/pkg/auth"
	"github.com/stockless/stockless-backend/pkg/db/models"
	"github.com/stockless/stockless-backend/pkg/enums"
)

// SessionState is the role gate's view of the current session.
type SessionState string

const (
	StateLoading         SessionState = "loading"
	StateUnauthenticated SessionState = "unauthenticated"
	StateBuyer           SessionState = "buyer"
	StateCreator         SessionState = "creator"
)

// Landing routes per session state. Creators land on their own dashboard,
// so the creator route is completed with a profile ID.
const (
	RouteLogin            = "/login"
	RouteBuyers           = "/buyers"
	routeCreatorDashboard = "/creator-dashboard/%s"
)

// GateEvent is a session transition observed by the gate.
type GateEvent struct {
	SignedIn bool
	Role     enums.UserRole
}

// Reduce folds one event into the current state. Events are idempotent:
// replaying the latest event leaves the state unchanged, so out-of-order
// duplicate deliveries converge on the same answer.
func Reduce(current SessionState, event GateEvent) SessionState {
	if !event.SignedIn {
		return StateUnauthenticated
	}
	switch event.Role {
	case enums.UserRoleBuyer:
		return StateBuyer
	case enums.UserRoleCreator:
		return StateCreator
	default:
		// Unknown role on a live session: treat as still resolving rather
		// than routing the user somewhere wrong.
		return StateLoading
	}
}

// StateForRole maps a confirmed role onto its session state.
func StateForRole(role enums.UserRole) SessionState {
	return Reduce(StateLoading, GateEvent{SignedIn: true, Role: role})
}

// GateResult tells the client where the current session belongs.
type GateResult struct {
	State      SessionState `json:"state"`
	RedirectTo string       `json:"redirect_to"`
}

// CreatorDashboardRoute builds the landing route for one creator.
func CreatorDashboardRoute(profileID uuid.UUID) string {
	return fmt.Sprintf(routeCreatorDashboard, profileID)
}

type gateProfileLoader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CreatorProfile, error)
}

// GateService resolves a session into its landing route.
type GateService struct {
	profiles gateProfileLoader
}

// NewGateService builds the role gate.
func NewGateService(profiles gateProfileLoader) (*GateService, error) {
	if profiles == nil {
		return nil, fmt.Errorf("profile loader required")
	}
	return &GateService{profiles: profiles}, nil
}

// RouteFor returns the landing route for a confirmed identity. Used by the
// role middleware to point a signed-in user at their own surface.
func (g *GateService) RouteFor(ctx context.Context, userID uuid.UUID, role enums.UserRole) (string, error) {
	switch StateForRole(role) {
	case StateBuyer:
		return RouteBuyers, nil
	case StateCreator:
		profile, err := g.profiles.GetByUserID(ctx, userID)
		if err != nil {
			return "", err
		}
		return CreatorDashboardRoute(profile.ID), nil
	default:
		return RouteLogin, nil
	}
}

// Resolve maps claims (nil for anonymous callers) onto a state and route.
// Resolving twice for the same session always yields the same result.
func (g *GateService) Resolve(ctx context.Context, claims *pkgauth.AccessTokenClaims) (*GateResult, error) {
	if claims == nil {
		return &GateResult{State: StateUnauthenticated, RedirectTo: RouteLogin}, nil
	}

	switch StateForRole(claims.Role) {
	case StateBuyer:
		return &GateResult{State: StateBuyer, RedirectTo: RouteBuyers}, nil
	case StateCreator:
		profile, err := g.profiles.GetByUserID(ctx, claims.UserID)
		if err != nil {
			return nil, err
		}
		return &GateResult{
			State:      StateCreator,
			RedirectTo: CreatorDashboardRoute(profile.ID),
		}, nil
	default:
		return &GateResult{State: StateUnauthenticated, RedirectTo: RouteLogin}, nil
	}
}
