package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/bher20/boilerquote/internal/alerting"
	"github.com/bher20/boilerquote/internal/catalog"
	"github.com/bher20/boilerquote/internal/metrics"
	"github.com/bher20/boilerquote/internal/storage"
	"github.com/bher20/boilerquote/pkg/suppliers"
	_ "github.com/bher20/boilerquote/pkg/suppliers/heatflow"
	_ "github.com/bher20/boilerquote/pkg/suppliers/plumbcore"
)

const jobName = "refresh_catalog"
const lockKey int64 = 47

// Run starts the catalog refresh worker: it periodically re-parses the
// supplier price lists, merges their prices into the base catalog, and
// stores a validated snapshot that the next deploy serves from. It requires
// the pgxpool backend so a PostgreSQL advisory lock can guarantee a single
// runner in multi-instance deployments.
func Run(ctx context.Context, driver, dsn string) error {
	if driver == "" {
		driver = "postgrespool"
	}
	if driver != "postgrespool" {
		return fmt.Errorf("catalog worker requires BOILERQUOTE_DB_DRIVER=postgrespool (got %q)", driver)
	}

	stGeneric, err := storage.Open(ctx, storage.Config{Driver: driver, DSN: dsn})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer stGeneric.Close()

	pg, ok := stGeneric.(*storage.PostgresPoolStorage)
	if !ok {
		return fmt.Errorf("storage driver %q is not PostgresPoolStorage", driver)
	}

	alerter := alerting.NewAlerter(alerting.DefaultAlertConfig())

	// Interval comes from env, overridable at runtime through the settings
	// table. Either integer seconds or a cron expression.
	intervalSetting := "3600"
	if raw := os.Getenv("BOILERQUOTE_CRON_INTERVAL_SECONDS"); raw != "" {
		intervalSetting = raw
	}
	if val, err := stGeneric.GetSetting(ctx, "refresh_interval_seconds"); err == nil && val != "" {
		intervalSetting = val
	}

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	getNextRun := func(setting string, lastRun time.Time) time.Time {
		if v, err := strconv.Atoi(setting); err == nil && v > 0 {
			return lastRun.Add(time.Duration(v) * time.Second)
		}
		if sched, err := cron.ParseStandard(setting); err == nil {
			return sched.Next(lastRun)
		}
		return lastRun.Add(time.Hour)
	}

	nextRun := time.Now()

	log.Printf("cron worker starting, initial setting=%q driver=%s", intervalSetting, driver)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if val, err := stGeneric.GetSetting(ctx, "refresh_interval_seconds"); err == nil && val != "" {
				if val != intervalSetting {
					log.Printf("cron: interval updated from %q to %q", intervalSetting, val)
					intervalSetting = val
					nextRun = getNextRun(intervalSetting, time.Now())
				}
			}

			if time.Now().Before(nextRun) {
				continue
			}

			started := time.Now()

			ok, err := pg.AcquireAdvisoryLock(ctx, lockKey)
			if err != nil {
				log.Printf("cron: acquire advisory lock failed: %v", err)
				metrics.UpdateJobMetrics(jobName, started, err)
				nextRun = getNextRun(intervalSetting, time.Now())
				continue
			}
			if !ok {
				log.Printf("cron: advisory lock held by another worker, skipping run")
				nextRun = getNextRun(intervalSetting, time.Now())
				continue
			}

			var runErr error
			func() {
				defer func() {
					if _, err := pg.ReleaseAdvisoryLock(ctx, lockKey); err != nil {
						log.Printf("cron: release advisory lock failed: %v", err)
					}
				}()
				runErr = refreshCatalog(ctx, stGeneric, alerter)
			}()

			metrics.UpdateJobMetrics(jobName, started, runErr)
			dur := time.Since(started)
			errMsg := ""
			success := runErr == nil
			if runErr != nil {
				errMsg = runErr.Error()
			}
			if err := pg.UpdateScheduledJob(ctx, jobName, started, dur, success, errMsg); err != nil {
				log.Printf("cron: update scheduled_jobs failed: %v", err)
			}

			if runErr != nil {
				log.Printf("cron: job %s completed with error: %v (duration=%s)", jobName, runErr, dur)
			} else {
				log.Printf("cron: job %s completed successfully (duration=%s)", jobName, dur)
			}

			nextRun = getNextRun(intervalSetting, time.Now())
		}
	}
}

// refreshCatalog rebuilds the catalog from the base data plus whatever
// supplier price lists are on disk, and writes a snapshot when the result
// validates. The running API keeps serving its loaded catalog either way;
// snapshots take effect at the next process start.
func refreshCatalog(ctx context.Context, st storage.Storage, alerter *alerting.Alerter) error {
	base := catalog.Default()
	if path := os.Getenv("BOILERQUOTE_CATALOG_PATH"); path != "" {
		if c, err := catalog.LoadFile(path); err == nil {
			base = c
		} else {
			log.Printf("cron: catalog file unreadable, refreshing from defaults: %v", err)
		}
	}

	merged := base
	sources := []string{"base"}
	supplierErrors := make(map[string]string)

	for _, sup := range suppliers.GetAll() {
		path := supplierPDFPath(sup)
		if _, err := os.Stat(path); err != nil {
			continue // no cached list for this supplier
		}
		pl, err := sup.ParsePDF(path)
		if err != nil {
			log.Printf("cron: parse %s price list failed: %v", sup.Key(), err)
			supplierErrors[sup.Key()] = err.Error()
			continue
		}
		var updated int
		merged, updated = pl.ApplyTo(merged)
		sources = append(sources, sup.Key())
		log.Printf("cron: supplier %s updated %d catalog prices", sup.Key(), updated)
	}

	if err := merged.Validate(); err != nil {
		_ = alerter.SendCatalogAlert(ctx, alerting.CatalogAlert{
			JobName:        jobName,
			Source:         strings.Join(sources, "+"),
			ValidationErr:  err.Error(),
			SupplierErrors: supplierErrors,
		})
		return fmt.Errorf("refreshed catalog failed validation: %w", err)
	}

	if len(supplierErrors) > 0 {
		_ = alerter.SendCatalogAlert(ctx, alerting.CatalogAlert{
			JobName:        jobName,
			Source:         strings.Join(sources, "+"),
			SupplierErrors: supplierErrors,
		})
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	return st.SaveCatalogSnapshot(ctx, storage.CatalogSnapshot{
		Source:    strings.Join(sources, "+"),
		Payload:   payload,
		FetchedAt: time.Now().UTC(),
	})
}

// supplierPDFPath resolves a supplier's price-list path, honoring env
// overrides like PLUMBCORE_PDF_PATH.
func supplierPDFPath(sup suppliers.Supplier) string {
	envKey := strings.ToUpper(sup.Key()) + "_PDF_PATH"
	if path := os.Getenv(envKey); path != "" {
		return path
	}
	return sup.DefaultPDFPath()
}
