package presale

import (
	"encoding/json"
	"fmt"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
)

type PresaleInitializedEvent struct {
	Admin string `json:"admin"`
}

type TokenAddressSetEvent struct {
	Token       string `json:"token"`
	TotalSupply string `json:"totalSupply"`
}

type RoundTargetSetEvent struct {
	Project uint64 `json:"project"`
	Target  string `json:"target"`
}

type AllocationsSetEvent struct {
	Project uint64   `json:"project"`
	Round   uint8    `json:"round"`
	Users   []string `json:"users,omitempty"`
	Caps    []string `json:"caps,omitempty"`
	Cap     string   `json:"cap,omitempty"`
}

type RoundStateChangedEvent struct {
	Project uint64 `json:"project"`
	State   string `json:"state"`
}

type UserRemovedEvent struct {
	Project    uint64 `json:"project"`
	Round      uint8  `json:"round"`
	User       string `json:"user"`
	Cap        string `json:"cap"`
	Investment string `json:"investment"`
}

type InvestedEvent struct {
	Project uint64 `json:"project"`
	Round   uint8  `json:"round"`
	User    string `json:"user"`
	Amount  string `json:"amount"`
	Total   string `json:"total"`
}

type WithdrawnEvent struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type PauseEvent struct {
	Admin string `json:"admin"`
}

func emitEvent(sdk chirpsdk.TransactionContextInterface, name string, payload interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = sdk.SetEvent(name, payloadJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitPresaleInitialized(sdk chirpsdk.TransactionContextInterface, admin string) error {
	return emitEvent(sdk, "PresaleInitialized", PresaleInitializedEvent{Admin: admin})
}

func EmitTokenAddressSet(sdk chirpsdk.TransactionContextInterface, token, totalSupply string) error {
	return emitEvent(sdk, "TokenAddressSet", TokenAddressSetEvent{Token: token, TotalSupply: totalSupply})
}

func EmitRoundTargetSet(sdk chirpsdk.TransactionContextInterface, project uint64, target string) error {
	return emitEvent(sdk, "RoundTargetSet", RoundTargetSetEvent{Project: project, Target: target})
}

func EmitRound1AllocationsSet(sdk chirpsdk.TransactionContextInterface, project uint64, users, caps []string) error {
	return emitEvent(sdk, "AllocationsSet", AllocationsSetEvent{Project: project, Round: Round1, Users: users, Caps: caps})
}

func EmitRound2CapSet(sdk chirpsdk.TransactionContextInterface, project uint64, userCap string) error {
	return emitEvent(sdk, "AllocationsSet", AllocationsSetEvent{Project: project, Round: Round2, Cap: userCap})
}

func EmitRoundStateChanged(sdk chirpsdk.TransactionContextInterface, project uint64, state string) error {
	return emitEvent(sdk, "RoundStateChanged", RoundStateChangedEvent{Project: project, State: state})
}

func EmitUserRemoved(sdk chirpsdk.TransactionContextInterface, project uint64, round uint8, user, userCap, investment string) error {
	return emitEvent(sdk, "UserRemoved", UserRemovedEvent{Project: project, Round: round, User: user, Cap: userCap, Investment: investment})
}

func EmitInvested(sdk chirpsdk.TransactionContextInterface, project uint64, round uint8, user, amount, total string) error {
	return emitEvent(sdk, "Invested", InvestedEvent{Project: project, Round: round, User: user, Amount: amount, Total: total})
}

func EmitWithdrawn(sdk chirpsdk.TransactionContextInterface, to, amount string) error {
	return emitEvent(sdk, "Withdrawn", WithdrawnEvent{To: to, Amount: amount})
}

func EmitPaused(sdk chirpsdk.TransactionContextInterface, admin string) error {
	return emitEvent(sdk, "PresalePaused", PauseEvent{Admin: admin})
}

func EmitUnpaused(sdk chirpsdk.TransactionContextInterface, admin string) error {
	return emitEvent(sdk, "PresaleUnpaused", PauseEvent{Admin: admin})
}
