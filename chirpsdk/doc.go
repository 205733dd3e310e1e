// Package chirpsdk is the runtime the ChirpPad contracts execute against.
//
// A contract invocation is a single atomic unit: the host opens one store
// transaction, hands the contract a TransactionContextInterface scoped to it,
// and either commits every write the call made or discards all of them when
// the call returns an error. Events recorded through the context are buffered
// per call and only become visible on commit, so observers never see
// notifications from reverted invocations.
package chirpsdk
