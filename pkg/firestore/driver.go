package firestore

import (
	"context"
	"errors"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/acdih/synaptic/pkg/settings"
)

const healthCheckDocument = "ping"

// EmulatorHostEnv is read by the SDK; when it is set the SDK supplies its own
// endpoint and disables authentication.
const EmulatorHostEnv = "FIRESTORE_EMULATOR_HOST"

// Driver creates Firestore clients for a pool.Pool.
type Driver struct {
	creds    settings.Credentials
	endpoint string
	cfg      Config
	opts     []option.ClientOption
}

// NewDriver validates the endpoint and returns a Driver. Extra client
// options are appended to the ones derived from settings.
func NewDriver(creds settings.Credentials, databaseURL string, cfg Config, opts ...option.ClientOption) (*Driver, error) {
	endpoint, err := Endpoint(databaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.HealthCheckCollection == "" {
		cfg.HealthCheckCollection = "_healthcheck"
	}
	return &Driver{
		creds:    creds,
		endpoint: endpoint,
		cfg:      cfg,
		opts:     opts,
	}, nil
}

// Dial creates a Firestore client. The SDK connects lazily; reachability is
// verified by the Ping that the pool runs right after Dial.
//
// The token source and the client keep the context they are built with for
// their whole life, so cancellation of ctx is detached here.
func (d *Driver) Dial(ctx context.Context) (*firestore.Client, error) {
	ctx = context.WithoutCancel(ctx)

	opts := make([]option.ClientOption, 0, len(d.opts)+2)
	if os.Getenv(EmulatorHostEnv) == "" {
		tokenCreds, err := TokenCredentials(ctx, d.creds)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentials(tokenCreds))
		if d.endpoint != "" {
			opts = append(opts, option.WithEndpoint(d.endpoint))
		}
	}
	opts = append(opts, d.opts...)

	client, err := firestore.NewClient(ctx, d.creds.ProjectID, opts...)
	if err != nil {
		return nil, errors.Join(ErrFailedToCreateClient, err)
	}
	return client, nil
}

// Ping reads the health-check document. A missing document still proves the
// service answered with valid credentials, so NotFound counts as healthy.
func (d *Driver) Ping(ctx context.Context, client *firestore.Client) error {
	_, err := client.Collection(d.cfg.HealthCheckCollection).Doc(healthCheckDocument).Get(ctx)
	if err == nil || status.Code(err) == codes.NotFound {
		return nil
	}
	return errors.Join(ErrHealthcheckFailed, err)
}

// Close releases the client's connections.
func (d *Driver) Close(client *firestore.Client) error {
	return client.Close()
}
