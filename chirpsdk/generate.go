package chirpsdk

//go:generate counterfeiter -o mocks/transactioncontext.go -fake-name TransactionContext . TransactionContextInterface
//go:generate counterfeiter -o mocks/clientidentity.go -fake-name ClientIdentity . ClientIdentity
