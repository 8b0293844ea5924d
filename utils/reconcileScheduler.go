package utils

import (
	"context"
	"log"

	"entropy/config"
	"entropy/store"

	"github.com/robfig/cron/v3"
)

// InitializeReconcileScheduler starts the periodic enrolled-count
// reconciliation job. The enroll path bumps the counter and the user set
// in separate writes, so a crash in between can leave the counter behind;
// this job converges the two.
func InitializeReconcileScheduler(st store.Store) *cron.Cron {
	log.Println("[RECONCILE-SCHEDULER] Initializing enrolled-count reconciler...")

	c := cron.New()

	_, err := c.AddFunc(config.AppConfig.ReconcileCron, func() {
		if err := ReconcileEnrolledCounts(context.Background(), st); err != nil {
			log.Printf("[RECONCILE-SCHEDULER] Reconcile run failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("[RECONCILE-SCHEDULER] Invalid schedule %q: %v", config.AppConfig.ReconcileCron, err)
		return c
	}

	c.Start()
	log.Printf("[RECONCILE-SCHEDULER] Reconciler started with schedule %q", config.AppConfig.ReconcileCron)
	return c
}

// ReconcileEnrolledCounts recomputes each module's enrolled counter from
// the distinct users whose enrollment set contains it and overwrites any
// counter that drifted.
func ReconcileEnrolledCounts(ctx context.Context, st store.Store) error {
	users, err := st.Users(ctx)
	if err != nil {
		return err
	}
	modules, err := st.Modules(ctx)
	if err != nil {
		return err
	}

	counts := make(map[uint]int64, len(modules))
	for i := range users {
		for _, moduleID := range users[i].EnrolledModules {
			counts[moduleID]++
		}
	}

	for _, module := range modules {
		want := counts[module.ID]
		if want == module.Enrolled {
			continue
		}
		log.Printf("[RECONCILE-SCHEDULER] Module %d count drifted: stored=%d computed=%d", module.ID, module.Enrolled, want)
		if err := st.SetEnrolledCount(ctx, module.ID, want); err != nil {
			return err
		}
	}
	return nil
}
