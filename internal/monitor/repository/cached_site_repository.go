package repository

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"sitewatch/internal/monitor/model"

	"github.com/redis/go-redis/v9"
)

// cachedSiteRepository is a read-through cache over SiteRepository. The
// scheduler re-reads the site after every cycle, so site lookups are the
// hottest read path in the process.
type cachedSiteRepository struct {
	redis    *redis.Client
	repo     SiteRepository
	cacheTTL time.Duration
}

func (*cachedSiteRepository) siteCacheKey(id string) string {
	return fmt.Sprintf("site:%s", id)
}

func (c *cachedSiteRepository) CreateSite(ctx context.Context, site model.Site) (model.Site, error) {
	return c.repo.CreateSite(ctx, site)
}

func (c *cachedSiteRepository) GetSiteById(ctx context.Context, siteID string) (model.Site, error) {
	data, err := c.redis.Get(ctx, c.siteCacheKey(siteID)).Bytes()
	if err == nil {
		var site model.Site
		if e := gob.NewDecoder(bytes.NewBuffer(data)).Decode(&site); e == nil {
			return site, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		return model.Site{}, fmt.Errorf("cachedSiteRepository.GetSiteById: %w", err)
	}
	site, err := c.repo.GetSiteById(ctx, siteID)
	if err != nil {
		return model.Site{}, err
	}
	var buf bytes.Buffer
	if e := gob.NewEncoder(&buf).Encode(site); e == nil {
		c.redis.Set(ctx, c.siteCacheKey(siteID), buf.Bytes(), c.cacheTTL)
	}
	return site, nil
}

func (c *cachedSiteRepository) GetActiveSites(ctx context.Context) ([]model.Site, error) {
	return c.repo.GetActiveSites(ctx)
}

func (c *cachedSiteRepository) GetSites(ctx context.Context, name string, status string, limit int, offset int) ([]model.Site, error) {
	return c.repo.GetSites(ctx, name, status, limit, offset)
}

func (c *cachedSiteRepository) UpdateSite(ctx context.Context, updatedData model.Site, active *bool) (model.Site, error) {
	if err := c.redis.Del(ctx, c.siteCacheKey(updatedData.ID)).Err(); err != nil {
		return model.Site{}, fmt.Errorf("cachedSiteRepository.UpdateSite: %w", err)
	}
	return c.repo.UpdateSite(ctx, updatedData, active)
}

func (c *cachedSiteRepository) UpdateSiteStatus(ctx context.Context, siteID string, status string, ssl *model.SSLResult) error {
	if err := c.redis.Del(ctx, c.siteCacheKey(siteID)).Err(); err != nil {
		return fmt.Errorf("cachedSiteRepository.UpdateSiteStatus: %w", err)
	}
	return c.repo.UpdateSiteStatus(ctx, siteID, status, ssl)
}

func (c *cachedSiteRepository) MarkAlerted(ctx context.Context, siteID string, at time.Time) error {
	if err := c.redis.Del(ctx, c.siteCacheKey(siteID)).Err(); err != nil {
		return fmt.Errorf("cachedSiteRepository.MarkAlerted: %w", err)
	}
	return c.repo.MarkAlerted(ctx, siteID, at)
}

func (c *cachedSiteRepository) DeleteSiteById(ctx context.Context, siteID string) error {
	if err := c.redis.Del(ctx, c.siteCacheKey(siteID)).Err(); err != nil {
		return fmt.Errorf("cachedSiteRepository.DeleteSiteById: %w", err)
	}
	return c.repo.DeleteSiteById(ctx, siteID)
}

func NewCachedSiteRepository(redisClient *redis.Client, repo SiteRepository, cacheTTL time.Duration) SiteRepository {
	return &cachedSiteRepository{
		redis:    redisClient,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
