// Package analytics contiene los casos de uso de solo lectura del panel de administración de alias.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/housing-reviews-api/internal/application/dto"
	"github.com/jhoicas/housing-reviews-api/internal/domain/entity"
	"github.com/jhoicas/housing-reviews-api/internal/domain/repository"
)

const dashboardTopAliases = 10 // número de alias en el widget de más usados

// DashboardUseCase genera el resumen del catálogo de alias.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el AliasDashboardResponse.
//
// Cuatro llamadas en paralelo:
//  1. CountActiveAliases       → ActiveAliases
//  2. CountUnlinkedAliases     → UnlinkedAliases
//  3. CountPendingSuggestions  → PendingSuggestions
//  4. TopUsedAliases(top 10)   → TopUsed
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.AliasDashboardResponse, error) {
	type countResult struct {
		n   int
		err error
	}
	type topResult struct {
		aliases []*entity.Alias
		err     error
	}

	activeCh := make(chan countResult, 1)
	unlinkedCh := make(chan countResult, 1)
	pendingCh := make(chan countResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountActiveAliases(ctx)
		activeCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountUnlinkedAliases(ctx)
		unlinkedCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountPendingSuggestions(ctx)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		aliases, err := uc.analyticsRepo.TopUsedAliases(ctx, dashboardTopAliases)
		topCh <- topResult{aliases, err}
	}()

	active := <-activeCh
	unlinked := <-unlinkedCh
	pending := <-pendingCh
	top := <-topCh

	if active.err != nil {
		return nil, fmt.Errorf("dashboard: alias activos: %w", active.err)
	}
	if unlinked.err != nil {
		return nil, fmt.Errorf("dashboard: alias sin vincular: %w", unlinked.err)
	}
	if pending.err != nil {
		return nil, fmt.Errorf("dashboard: sugerencias pendientes: %w", pending.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top alias: %w", top.err)
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	topUsed := make([]dto.AliasResponse, 0, len(top.aliases))
	for _, a := range top.aliases {
		topUsed = append(topUsed, dto.AliasResponse{
			ID:             a.ID,
			Name:           a.Name,
			NormalizedName: a.NormalizedName,
			CompanyID:      a.CompanyID,
			Category:       a.Category,
			Priority:       a.Priority,
			IsActive:       a.IsActive,
			UsageCount:     a.UsageCount,
			LastUsedAt:     a.LastUsedAt,
			CreatedAt:      a.CreatedAt,
			UpdatedAt:      a.UpdatedAt,
		})
	}
	return &dto.AliasDashboardResponse{
		ActiveAliases:      active.n,
		UnlinkedAliases:    unlinked.n,
		PendingSuggestions: pending.n,
		TopUsed:            topUsed,
	}, nil
}
