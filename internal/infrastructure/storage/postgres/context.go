package postgres

import (
	"aromapos/internal/core/tx"
	"fmt"
)

// AsTxManager downcasts a core tx.Manager to the postgres implementation.
// It is meant for infrastructure code that needs access to GetQuerier()/GetTx().
//
// Domain code should depend only on internal/core/tx.Manager.
func AsTxManager(txm tx.Manager) *TxManager {
	postgresTxm, ok := txm.(*TxManager)
	if !ok || postgresTxm == nil {
		panic(fmt.Sprintf("TxManager has unexpected type: %T", txm))
	}
	return postgresTxm
}
