package dbmetrics

import "context"

type txContextKey struct{}

// WithTransaction returns a context carrying an open transaction.
// Repositories pick it up through GetExecutor, so services and usecases
// can compose repository calls into one transaction without threading
// *sql.Tx through every signature.
func WithTransaction(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// GetExecutor returns the transaction carried by ctx, or fallback when the
// call is not running inside one.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txContextKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether ctx carries an open transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txContextKey{}).(TxExecutor)
	return ok
}
