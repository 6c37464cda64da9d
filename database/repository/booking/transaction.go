package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"storefront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReconcilePayment inserts the payment record and flags the referenced booking
// as paid inside a single MongoDB transaction, so a failed booking update
// never leaves a half-applied reconciliation.
//
// An unmatched booking identifier is not an error: the payment ledger entry
// commits regardless, and the zero-match is reported through the returned bool.
func (r *MongoBookingRepo) ReconcilePayment(ctx context.Context, payment *models.Payment) (bool, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	payment.CreatedAt = time.Now()

	client := r.paymentColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return false, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	updated := false
	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.paymentColl.InsertOne(sc, payment); err != nil {
			return fmt.Errorf("insert payment failed: %w", err)
		}

		filter := bson.M{"id": payment.BookingID}
		update := bson.M{
			"$set": bson.M{
				"paid":          true,
				"transactionId": payment.TransactionID,
			},
		}

		res, err := r.bookingColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("mark booking paid failed: %w", err)
		}
		updated = res.MatchedCount > 0
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return false, fmt.Errorf("payment reconciliation failed: %w", err)
	}

	return updated, nil
}
