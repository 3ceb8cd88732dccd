package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flyright-service/internal/domain/entity"
	"flyright-service/internal/domain/repository"
	"flyright-service/pkg/logger"
)

// ShopifyMemberRepository verifies FlyRight membership against the Shopify
// Customer API. Members are customers tagged by the purchase flow.
type ShopifyMemberRepository struct {
	logger      logger.Logger
	store       string
	accessToken string
	memberTag   string
	httpClient  *http.Client
}

// NewShopifyMemberRepository creates a new Shopify membership repository
func NewShopifyMemberRepository(store, accessToken, memberTag string, log logger.Logger) repository.MemberRepository {
	if memberTag == "" {
		memberTag = "flyright-member"
	}

	return &ShopifyMemberRepository{
		logger:      log,
		store:       store,
		accessToken: accessToken,
		memberTag:   memberTag,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

type shopifyCustomer struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Tags      string `json:"tags"`
	State     string `json:"state"`
}

type customersResponse struct {
	Customers []shopifyCustomer `json:"customers"`
}

// CheckMembership verifies that the email belongs to a customer carrying the
// member tag. Without Shopify credentials the check passes open (dev mode).
func (r *ShopifyMemberRepository) CheckMembership(ctx context.Context, email string) (*entity.MembershipStatus, error) {
	if r.store == "" || r.accessToken == "" {
		r.logger.Warn("Shopify not configured, allowing all access", "email", email)
		return &entity.MembershipStatus{Valid: true, Reason: entity.ReasonDevMode}, nil
	}

	searchURL := fmt.Sprintf("https://%s/admin/api/2024-10/customers/search.json?query=email:%s",
		r.store, url.QueryEscape(email))

	payload, err := r.fetchCustomers(ctx, searchURL)
	if err != nil {
		r.logger.Error("Shopify customer search failed", "email", email, "error", err)
		return &entity.MembershipStatus{Valid: false, Reason: entity.ReasonUpstreamFail}, nil
	}

	if len(payload.Customers) == 0 {
		return &entity.MembershipStatus{Valid: false, Reason: entity.ReasonNotFound}, nil
	}

	customer := payload.Customers[0]
	if !hasTag(customer.Tags, r.memberTag) {
		return &entity.MembershipStatus{Valid: false, Reason: entity.ReasonTagMissing}, nil
	}

	return &entity.MembershipStatus{
		Valid:  true,
		Reason: entity.ReasonActive,
		Customer: &entity.Member{
			Email:     customer.Email,
			FirstName: customer.FirstName,
		},
	}, nil
}

// ListMembers returns all customers carrying the member tag, for the digest
// recipient list. Returns an empty list in dev mode.
func (r *ShopifyMemberRepository) ListMembers(ctx context.Context) ([]*entity.Member, error) {
	if r.store == "" || r.accessToken == "" {
		r.logger.Warn("Shopify not configured, no digest recipients")
		return nil, nil
	}

	searchURL := fmt.Sprintf("https://%s/admin/api/2024-10/customers/search.json?query=tag:%s&limit=250",
		r.store, url.QueryEscape(r.memberTag))

	payload, err := r.fetchCustomers(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	members := make([]*entity.Member, 0, len(payload.Customers))
	for _, c := range payload.Customers {
		if c.Email == "" {
			continue
		}
		members = append(members, &entity.Member{
			Email:     c.Email,
			FirstName: c.FirstName,
		})
	}

	return members, nil
}

func (r *ShopifyMemberRepository) fetchCustomers(ctx context.Context, searchURL string) (*customersResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", r.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shopify returned status %d", resp.StatusCode)
	}

	var payload customersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &payload, nil
}

func hasTag(tags, want string) bool {
	for _, tag := range strings.Split(tags, ",") {
		if strings.EqualFold(strings.TrimSpace(tag), want) {
			return true
		}
	}
	return false
}
