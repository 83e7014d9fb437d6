package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/stockless/stockless-backend/internal/pricing"
	"github.com/stockless/stockless-backend/pkg/db/models"
	dbtypes "github.com/stockless/stockless-backend/pkg/db/types"
	"github.com/stockless/stockless-backend/pkg/enums"
	pkgerrors "github.com/stockless/stockless-backend/pkg/errors"
	"github.com/stockless/stockless-backend/pkg/types"
)

type cartLoader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
}

type mediaLoader interface {
	GetAvailableByID(ctx context.Context, id uuid.UUID) (*models.MediaItem, error)
}

type profileLoader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.CreatorProfile, error)
}

type requestWriter interface {
	Create(ctx context.Context, req *models.LicenseRequest) (*models.LicenseRequest, error)
}

// TermsInput is the license configuration a buyer picks at checkout. It
// applies to every item in the creator's cart group.
type TermsInput struct {
	IncludesEditing bool
	Exclusivity     bool
	DurationMonths  int
	Region          string
}

// Input names the creator group being checked out plus the agreed terms.
type Input struct {
	CreatorID uuid.UUID
	Terms     TermsInput
}

// Order is the outcome of one checkout: the persisted license request plus
// the mock payment reference. The cart is left untouched so the buyer can
// still check out the remaining creator groups.
type Order struct {
	RequestID    uuid.UUID           `json:"request_id"`
	CreatorID    uuid.UUID           `json:"creator_id"`
	MediaItemIDs []uuid.UUID         `json:"media_item_ids"`
	Status       enums.RequestStatus `json:"status"`
	Terms        types.LicenseTerms  `json:"terms"`
	PriceCents   int64               `json:"price_cents"`
	PaymentRef   string              `json:"payment_ref"`
}

// Service turns one creator's cart group into a pending license request.
type Service interface {
	Checkout(ctx context.Context, buyerID uuid.UUID, input Input) (*Order, error)
}

// ServiceParams bundles the checkout dependencies.
type ServiceParams struct {
	Cart                  cartLoader
	Media                 mediaLoader
	Profiles              profileLoader
	Requests              requestWriter
	DefaultUnitPriceCents int64
}

type service struct {
	cart             cartLoader
	media            mediaLoader
	profiles         profileLoader
	requests         requestWriter
	defaultUnitPrice int64
}

// NewService builds a checkout service with the provided stack.
func NewService(params ServiceParams) (Service, error) {
	if params.Cart == nil {
		return nil, fmt.Errorf("cart loader required")
	}
	if params.Media == nil {
		return nil, fmt.Errorf("media loader required")
	}
	if params.Profiles == nil {
		return nil, fmt.Errorf("profile loader required")
	}
	if params.Requests == nil {
		return nil, fmt.Errorf("request writer required")
	}
	return &service{
		cart:             params.Cart,
		media:            params.Media,
		profiles:         params.Profiles,
		requests:         params.Requests,
		defaultUnitPrice: params.DefaultUnitPriceCents,
	}, nil
}

// Checkout prices the buyer's cart lines for one creator and persists a
// pending license request. Prices come from the live media rows, never the
// client or the cart snapshot, so a creator's price change between add and
// checkout is reflected. Payment is mocked: no processor runs, the order
// just carries a reference.
func (s *service) Checkout(ctx context.Context, buyerID uuid.UUID, input Input) (*Order, error) {
	terms, err := parseTerms(input.Terms)
	if err != nil {
		return nil, err
	}

	lines, err := s.cart.ListByUser(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	var group []models.CartItem
	for _, line := range lines {
		if line.CreatorID == input.CreatorID {
			group = append(group, line)
		}
	}
	if len(group) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart has no items for this creator")
	}

	profile, err := s.profiles.GetByID(ctx, input.CreatorID)
	if err != nil {
		return nil, err
	}

	var totalCents int64
	mediaIDs := make([]uuid.UUID, 0, len(group))
	sharedType := enums.MediaType("")
	for i, line := range group {
		item, err := s.media.GetAvailableByID(ctx, line.MediaItemID)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
				return nil, pkgerrors.New(pkgerrors.CodeConflict, "a cart item is no longer available")
			}
			return nil, err
		}

		unit := pricing.ResolveUnitPriceCents(item, profile, s.defaultUnitPrice)
		cents, err := pricing.QuoteCents(unit, pricing.Selection{
			Count:           1,
			MediaType:       item.Type,
			IncludesEditing: terms.IncludesEditing,
			Exclusivity:     terms.Exclusivity,
			DurationMonths:  terms.DurationMonths,
			Region:          terms.Region,
		})
		if err != nil {
			return nil, err
		}
		totalCents += cents
		mediaIDs = append(mediaIDs, item.ID)

		// Record the media type on the terms only when the group is uniform.
		if i == 0 {
			sharedType = item.Type
		} else if sharedType != item.Type {
			sharedType = ""
		}
	}
	terms.MediaType = sharedType

	req, err := s.requests.Create(ctx, &models.LicenseRequest{
		BuyerID:      buyerID,
		CreatorID:    profile.ID,
		MediaItemIDs: dbtypes.UUIDArray(mediaIDs),
		Status:       enums.RequestStatusPending,
		Terms:        terms,
		PriceCents:   totalCents,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist license request")
	}

	return &Order{
		RequestID:    req.ID,
		CreatorID:    req.CreatorID,
		MediaItemIDs: mediaIDs,
		Status:       req.Status,
		Terms:        terms,
		PriceCents:   req.PriceCents,
		PaymentRef:   mockPaymentRef(req.ID),
	}, nil
}

func parseTerms(input TermsInput) (types.LicenseTerms, error) {
	if !enums.LicenseDuration(input.DurationMonths).IsValid() {
		return types.LicenseTerms{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid license duration")
	}

	var region enums.Region
	if input.Region != "" {
		parsed, err := enums.ParseRegion(input.Region)
		if err != nil {
			return types.LicenseTerms{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid region")
		}
		region = parsed
	}

	return types.LicenseTerms{
		IncludesEditing: input.IncludesEditing,
		Exclusivity:     input.Exclusivity,
		DurationMonths:  input.DurationMonths,
		Region:          region,
	}, nil
}

// mockPaymentRef stands in for a payment processor reference until a real
// integration lands.
func mockPaymentRef(requestID uuid.UUID) string {
	return "mockpay_" + requestID.String()
}
