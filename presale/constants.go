package presale

const (
	zeroAddress = "0x0000000000000000000000000000000000000000"

	userAddressRegex = `^0x[0-9a-fA-F]{40}$`

	adminKey        = "presaleadmin"
	tokenAddressKey = "presaletoken"
	pausedKey       = "presalepaused"

	investGuard      = "Invest"
	withdrawGuard    = "Withdraw"
	tokenConfigGuard = "SetTokenAddress"
)

// Round identifiers accepted by the investment operations.
const (
	Round1 = uint8(1)
	Round2 = uint8(2)
)

// Round states. A project that has never been touched reads as Round1Open.
const (
	StateRound1Open     = "Round1Open"
	StateRound1Complete = "Round1Complete"
	StateRound2Open     = "Round2Open"
	StateRound2Disabled = "Round2Disabled"
)

// ContractAccount is the token account the presale contract collects
// investments in. Invest pulls into it and Withdraw pays out of it.
const ContractAccount = "0x2000000000000000000000000000000000000002"
