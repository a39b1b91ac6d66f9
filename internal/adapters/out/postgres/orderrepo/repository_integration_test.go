package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers, covering persistence
// round-trips, conditional transition writes, and scope queries.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository

	client    user.Snapshot
	owner     user.Snapshot
	deliverer user.Snapshot
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.client = suite.newUser("Alice", user.Client)
	suite.owner = suite.newUser("Bob", user.Restaurateur)
	suite.deliverer = suite.newUser("Carol", user.Deliverer)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newUser(firstName string, role user.Role) user.Snapshot {
	u, err := user.NewSnapshot(kernel.NewUUID(), firstName, "Doe", firstName+"@example.com", "+33600000000", role)
	suite.Require().NoError(err)
	return u
}

func (suite *OrderRepositoryIntegrationTestSuite) newDraft() order.Draft {
	position, err := kernel.NewGeoPoint(2.35, 48.85)
	suite.Require().NoError(err)
	restaurant, err := order.NewRestaurant(kernel.NewUUID(), suite.owner, "Chez Momo", "Couscous and tagines", "1 rue du Four, Paris", position)
	suite.Require().NoError(err)
	product, err := order.NewProduct(kernel.NewUUID(), "Couscous royal", 15.5, "With merguez", "")
	suite.Require().NoError(err)
	menuProduct, err := order.NewProduct(kernel.NewUUID(), "Mint tea", 3, "", "")
	suite.Require().NoError(err)
	menu, err := order.NewMenu(kernel.NewUUID(), "Lunch deal", 19.9, "", "", []order.Product{product, menuProduct})
	suite.Require().NoError(err)

	return order.Draft{
		Restaurant:      restaurant,
		Products:        []order.Product{product},
		Menus:           []order.Menu{menu},
		Price:           35.4,
		DeliveryPrice:   2.5,
		CommissionPrice: 1.5,
		Address:         "10 avenue des Gobelins, Paris",
		Position:        position,
		Comment:         "3rd floor",
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(status order.Status, deliverer *user.Snapshot) *order.Order {
	o, err := order.RestoreOrder(kernel.NewUUID(), suite.client, suite.newDraft(), status, deliverer, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	o, err := order.NewOrder(kernel.NewUUID(), suite.client, suite.newDraft())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal(order.Validating, got.Status())
	suite.True(got.Client().IsEqual(suite.client))
	suite.True(got.Restaurant().Owner().IsEqual(suite.owner))
	suite.Len(got.Products(), 1)
	suite.Len(got.Menus(), 1)
	suite.Len(got.Menus()[0].Products(), 2)
	suite.Equal("3rd floor", got.Comment())
	suite.Nil(got.Deliverer())
	suite.Nil(got.ValidationCode())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestApplyTransition_StatusChange() {
	ctx := context.Background()
	o := suite.addOrder(order.Validating, nil)

	transition, err := o.Accept(suite.owner)
	suite.Require().NoError(err)

	updated, err := suite.repository.ApplyTransition(ctx, o.ID(), transition)
	suite.Require().NoError(err)
	suite.Equal(order.Preparating, updated.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestApplyTransition_LostRaceConflict() {
	ctx := context.Background()
	o := suite.addOrder(order.Validating, nil)

	transition, err := o.Accept(suite.owner)
	suite.Require().NoError(err)

	_, err = suite.repository.ApplyTransition(ctx, o.ID(), transition)
	suite.Require().NoError(err)

	// Same transition again: the stored status no longer matches the
	// expectation, so exactly one of two identical attempts wins.
	_, err = suite.repository.ApplyTransition(ctx, o.ID(), transition)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparating, got.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestApplyTransition_DelivererClaimExclusivity() {
	ctx := context.Background()
	o := suite.addOrder(order.WaitingDelivery, nil)

	first, err := o.AssignDeliverer(suite.deliverer)
	suite.Require().NoError(err)
	second, err := o.AssignDeliverer(suite.newUser("Dave", user.Deliverer))
	suite.Require().NoError(err)

	updated, err := suite.repository.ApplyTransition(ctx, o.ID(), first)
	suite.Require().NoError(err)
	suite.Require().NotNil(updated.Deliverer())
	suite.True(updated.Deliverer().IsEqual(suite.deliverer))
	suite.Equal(order.WaitingDelivery, updated.Status())

	// The second claim sees deliverer_id already set and loses.
	_, err = suite.repository.ApplyTransition(ctx, o.ID(), second)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestApplyTransition_ValidationCodePersists() {
	ctx := context.Background()
	deliverer := suite.deliverer
	o := suite.addOrder(order.WaitingDelivery, &deliverer)

	transition, err := o.BeginDelivery(suite.deliverer)
	suite.Require().NoError(err)

	updated, err := suite.repository.ApplyTransition(ctx, o.ID(), transition)
	suite.Require().NoError(err)
	suite.Equal(order.Delivering, updated.Status())
	suite.Require().NotNil(updated.ValidationCode())
	suite.Equal(*transition.Change.ValidationCode, *updated.ValidationCode())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateFields_Patch() {
	ctx := context.Background()
	o := suite.addOrder(order.Validating, nil)

	newAddress := "99 boulevard Voltaire, Paris"
	newComment := ""
	updated, err := suite.repository.UpdateFields(ctx, o.ID(), order.Patch{
		Address: &newAddress,
		Comment: &newComment,
	})
	suite.Require().NoError(err)
	suite.Equal(newAddress, updated.Address())
	suite.Equal("", updated.Comment())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateFields_NotFound() {
	newAddress := "nowhere"
	_, err := suite.repository.UpdateFields(context.Background(), kernel.NewUUID(), order.Patch{Address: &newAddress})
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFind_ClientScope() {
	ctx := context.Background()
	mine := suite.addOrder(order.Validating, nil)

	otherClient := suite.newUser("Eve", user.Client)
	other, err := order.NewOrder(kernel.NewUUID(), otherClient, suite.newDraft())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, other))

	scope := order.ClientScope{ClientID: suite.client.ID()}
	found, err := suite.repository.Find(ctx, scope, order.Filter{Size: 10})
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.True(found[0].IsEqual(mine))

	total, err := suite.repository.Count(ctx, scope, order.Filter{Size: 10})
	suite.Require().NoError(err)
	suite.EqualValues(1, total)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFind_DelivererPool() {
	ctx := context.Background()
	deliverer := suite.deliverer
	pool := suite.addOrder(order.WaitingDelivery, nil)
	claimed := suite.addOrder(order.Delivering, &deliverer)
	suite.addOrder(order.Validating, nil) // not yet claimable

	scope := order.DelivererScope{DelivererID: suite.deliverer.ID(), Pool: order.PoolAll}
	found, err := suite.repository.Find(ctx, scope, order.Filter{Size: 10})
	suite.Require().NoError(err)
	suite.Require().Len(found, 2)

	ids := []string{found[0].ID().String(), found[1].ID().String()}
	suite.Contains(ids, pool.ID().String())
	suite.Contains(ids, claimed.ID().String())

	unassigned, err := suite.repository.Find(ctx,
		order.DelivererScope{DelivererID: suite.deliverer.ID(), Pool: order.PoolUnassigned},
		order.Filter{Size: 10})
	suite.Require().NoError(err)
	suite.Require().Len(unassigned, 1)
	suite.True(unassigned[0].IsEqual(pool))

	mineOnly, err := suite.repository.Find(ctx,
		order.DelivererScope{DelivererID: suite.deliverer.ID(), Pool: order.PoolMine},
		order.Filter{Size: 10})
	suite.Require().NoError(err)
	suite.Require().Len(mineOnly, 1)
	suite.True(mineOnly[0].IsEqual(claimed))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFind_StatusFilterAndPaging() {
	ctx := context.Background()
	deliverer := suite.deliverer
	for range 3 {
		suite.addOrder(order.Completed, &deliverer)
	}
	suite.addOrder(order.Validating, nil)

	filter := order.Filter{Statuses: []order.Status{order.Completed}, Skip: 0, Size: 2}
	found, err := suite.repository.Find(ctx, order.AllScope{}, filter)
	suite.Require().NoError(err)
	suite.Len(found, 2)

	total, err := suite.repository.Count(ctx, order.AllScope{}, filter)
	suite.Require().NoError(err)
	suite.EqualValues(3, total)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
