package rewards

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"encore.app/rewards/business/reward"
	"encore.app/rewards/repository/operations"
	"encore.app/rewards/stripegateway"
	rewardworkflow "encore.app/rewards/workflow"
)

var rewardsDB = sqldb.NewDatabase("rewards", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

var secrets struct {
	// StripeCredential is either the bare provider secret key or a JSON
	// blob carrying it under a known field.
	StripeCredential string
}

const taskQueue = "rewards"

var validate = validator.New()

//encore:service
type Service struct {
	business    reward.Business
	clientCache *stripegateway.ClientCache
	temporal    client.Client
	worker      worker.Worker
}

func initService() (*Service, error) {
	apiKey, err := stripegateway.ParseCredential(secrets.StripeCredential)
	if err != nil {
		return nil, err
	}

	clientCache := stripegateway.NewClientCache()
	gateway := stripegateway.New(clientCache.GetOrCreate(apiKey))

	pgxdb := sqldb.Driver[*pgxpool.Pool](rewardsDB)
	operationRepo := operations.New(pgxdb)

	business := reward.NewRewardBusiness(gateway, operationRepo)
	rewardworkflow.SetActivityDependencies(business)

	temporalClient, err := client.Dial(client.Options{})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(rewardworkflow.GrantReward)
	w.RegisterActivity(rewardworkflow.CreateCouponActivity)
	w.RegisterActivity(rewardworkflow.CreatePromotionCodeActivity)
	w.RegisterActivity(rewardworkflow.CreditBalanceActivity)
	w.RegisterActivity(rewardworkflow.DeleteCouponActivity)

	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("rewards service initialized", "taskQueue", taskQueue)

	return &Service{
		business:    business,
		clientCache: clientCache,
		temporal:    temporalClient,
		worker:      w,
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	s.worker.Stop()
	s.temporal.Close()
}
