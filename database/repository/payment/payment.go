package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"connectplatform/database"
	"connectplatform/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PaymentRepository persists gateway payments and the gateway key config.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) error
	// GetByOrderID returns nil, nil when no payment references the order.
	GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	// MarkCompleted records the verified gateway payment id and signature.
	MarkCompleted(ctx context.Context, orderID, gatewayPaymentID, signature string) (*models.Payment, error)
	// List scans payments, optionally filtered by student or teacher.
	List(ctx context.Context, studentID, teacherID string) ([]models.Payment, error)

	// GetConfig returns nil, nil when no gateway config record exists yet.
	GetConfig(ctx context.Context) (*models.GatewayConfig, error)
	PutConfig(ctx context.Context, cfg *models.GatewayConfig) error
}

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	payments *mongo.Collection
	config   *mongo.Collection
}

// NewMongoPaymentRepo creates a new PaymentRepository backed by MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	db := database.DB()
	repo := &MongoPaymentRepo{
		payments: db.Collection("payments"),
		config:   db.Collection("gateway_config"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "payment_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "order_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "student_id", Value: 1}}},
		{Keys: bson.D{{Key: "teacher_id", Value: 1}}},
	}

	_, err := r.payments.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Insert stores a newly initiated payment.
func (r *MongoPaymentRepo) Insert(ctx context.Context, payment *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.payments.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

// GetByOrderID fetches a payment by its gateway order id.
func (r *MongoPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payment models.Payment
	err := r.payments.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment for order %s: %w", orderID, err)
	}
	return &payment, nil
}

// MarkCompleted transitions the payment to completed after verification.
func (r *MongoPaymentRepo) MarkCompleted(ctx context.Context, orderID, gatewayPaymentID, signature string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     models.PaymentStatusCompleted,
		"payment_id": gatewayPaymentID,
		"signature":  signature,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var payment models.Payment
	err := r.payments.FindOneAndUpdate(ctx, bson.M{"order_id": orderID}, update, opts).Decode(&payment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to complete payment for order %s: %w", orderID, err)
	}
	return &payment, nil
}

// List scans payments with an optional party filter.
func (r *MongoPaymentRepo) List(ctx context.Context, studentID, teacherID string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if studentID != "" {
		filter["student_id"] = studentID
	} else if teacherID != "" {
		filter["teacher_id"] = teacherID
	}

	cursor, err := r.payments.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("error decoding payments: %w", err)
	}
	return payments, nil
}

// gateway config is a single well-known document.
const gatewayConfigID = "razorpay"

// GetConfig fetches the stored gateway key pair.
func (r *MongoPaymentRepo) GetConfig(ctx context.Context) (*models.GatewayConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cfg models.GatewayConfig
	err := r.config.FindOne(ctx, bson.M{"_id": gatewayConfigID}).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gateway config: %w", err)
	}
	return &cfg, nil
}

// PutConfig upserts the gateway key pair.
func (r *MongoPaymentRepo) PutConfig(ctx context.Context, cfg *models.GatewayConfig) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cfg.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"key_id":     cfg.KeyID,
		"key_secret": cfg.KeySecret,
		"updated_at": cfg.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.config.UpdateOne(ctx, bson.M{"_id": gatewayConfigID}, update, opts); err != nil {
		return fmt.Errorf("failed to store gateway config: %w", err)
	}
	return nil
}
