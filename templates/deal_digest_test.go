package templates

import (
	"strings"
	"testing"

	"flyright-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDealDigestEmpty(t *testing.T) {
	subject, html := BuildDealDigest(nil)
	assert.Empty(t, subject)
	assert.Empty(t, html)
}

func TestBuildDealDigestSubject(t *testing.T) {
	subject, _ := BuildDealDigest([]*entity.Deal{
		{Route: "New York -> Sao Paulo", Price: 1450, AvgPrice: 2900, PctOff: 50, Savings: 1450},
	})
	assert.Equal(t, "FlyRight Deals: 1 Business Class Fare, Up to 50% Off", subject)

	subject, _ = BuildDealDigest([]*entity.Deal{
		{Route: "a", PctOff: 40},
		{Route: "b", PctOff: 28},
	})
	assert.Equal(t, "FlyRight Deals: 2 Business Class Fares, Up to 40% Off", subject)
}

func TestBuildDealDigestBody(t *testing.T) {
	deals := []*entity.Deal{
		{
			Route:     "Washington DC -> Sao Paulo",
			Carrier:   "AA (American)",
			Price:     1450,
			AvgPrice:  2900,
			PctOff:    50,
			Savings:   1450,
			Date:      "2026-09-15",
			Stops:     0,
			Compliant: true,
		},
		{
			Route:     "Miami -> Buenos Aires",
			Carrier:   "AR (Aerolineas)",
			Price:     900,
			AvgPrice:  1300,
			PctOff:    31,
			Savings:   400,
			Date:      "2026-09-29",
			Stops:     2,
			IsGateway: true,
		},
	}

	_, html := BuildDealDigest(deals)
	require.NotEmpty(t, html)

	assert.Contains(t, html, "Washington DC -> Sao Paulo")
	assert.Contains(t, html, "$1450")
	assert.Contains(t, html, "50% off")
	assert.Contains(t, html, "Nonstop")
	assert.Contains(t, html, "Fly America")
	assert.Contains(t, html, "2 stops")
	assert.Contains(t, html, "Check compliance")
	assert.Contains(t, html, "Gateway route")
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "width:100%;", "format escapes resolve")
}
