// Package watcher re-runs a report whenever the sales database changes.
//
// SQLite in WAL mode writes to "<db>-wal" first and only checkpoints into the
// main file later, so the watcher observes the directory that holds the
// database and reacts to events on the database, its WAL file and its
// rollback journal. Bursts of writes (a seed run inserts hundreds of rows)
// are coalesced with a debounce timer so the handler runs once per burst.
//
// Example usage:
//
//	w, err := watcher.New(dbPath, func(ctx context.Context) error {
//		res, err := svc.Recommendations(ctx)
//		if err != nil {
//			return err
//		}
//		fmt.Print(output.RenderRecommendations(res))
//		return nil
//	}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := w.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer w.Stop()
package watcher
