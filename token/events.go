package token

import (
	"encoding/json"
	"fmt"

	"github.com/Chirpleyai/ChirpPadContracts/chirpsdk"
)

type TransferEvent struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

type ApprovalEvent struct {
	Owner   string `json:"owner"`
	Spender string `json:"spender"`
	Amount  string `json:"amount"`
}

type MintEvent struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

func EmitTransfer(sdk chirpsdk.TransactionContextInterface, from, to, amount string) error {
	transfer := TransferEvent{
		From:   from,
		To:     to,
		Amount: amount,
	}

	transferJSON, err := json.Marshal(transfer)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = sdk.SetEvent("Transfer", transferJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitApproval(sdk chirpsdk.TransactionContextInterface, owner, spender, amount string) error {
	approval := ApprovalEvent{
		Owner:   owner,
		Spender: spender,
		Amount:  amount,
	}

	approvalJSON, err := json.Marshal(approval)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = sdk.SetEvent("Approval", approvalJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}

func EmitMint(sdk chirpsdk.TransactionContextInterface, to, amount string) error {
	mint := MintEvent{
		To:     to,
		Amount: amount,
	}

	mintJSON, err := json.Marshal(mint)
	if err != nil {
		return fmt.Errorf("failed to obtain JSON encoding: %v", err)
	}

	err = sdk.SetEvent("Mint", mintJSON)
	if err != nil {
		return fmt.Errorf("failed to set event: %v", err)
	}

	return nil
}
