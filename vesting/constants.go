package vesting

const (
	zeroAddress = "0x0000000000000000000000000000000000000000"

	userAddressRegex = `^0x[0-9a-fA-F]{40}$`
	merkleRootRegex  = `^[0-9a-fA-F]{64}$`

	adminKey        = "vestingadmin"
	tokenAddressKey = "vestingtoken"
	pausedKey       = "vestingpaused"
	merkleRootKey   = "vestingmerkleroot"
	poolKeyPrefix   = "vestingpool_"

	claimGuard       = "Claim"
	depositGuard     = "DepositTokens"
	tokenConfigGuard = "SetTokenAddress"
)

// ContractAccount is the token account the vesting contract holds deposits
// in. DepositTokens pulls into it and Claim pays out of it.
const ContractAccount = "0x1000000000000000000000000000000000000001"
