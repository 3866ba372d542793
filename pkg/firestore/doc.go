// Package firestore connects the settings package to Google Cloud Firestore.
//
// It renders the validated credentials as a service-account key, turns the
// configured database URL into a gRPC endpoint and plugs a Driver into
// pool.Pool so callers share one lazily created *firestore.Client that is
// health-checked and recreated on failure.
//
// # Usage
//
//	cfg, err := settings.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fc, err := firestore.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	clients, err := firestore.NewPool(cfg, fc, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer clients.Close()
//
//	client, err := clients.Get(ctx)
//	if err != nil {
//	    return err
//	}
//	doc, err := client.Collection("graphs").Doc(id).Get(ctx)
//
// # Health checks
//
// Ping reads a document from FIRESTORE_HEALTHCHECK_COLLECTION. The document
// does not need to exist: NotFound proves the service answered and accepted
// the credentials.
//
// # Emulator
//
// When FIRESTORE_EMULATOR_HOST is set the SDK talks to the emulator and the
// driver passes no credentials, which is how the integration test runs.
package firestore
