package notifier

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"
	"github.com/x-xyz/auctionhouse/base/ctx"
	"github.com/x-xyz/auctionhouse/domain"
	"github.com/x-xyz/auctionhouse/domain/account"
	"github.com/x-xyz/auctionhouse/domain/auction"
	"github.com/x-xyz/auctionhouse/domain/chain"
	"github.com/x-xyz/auctionhouse/service/ens"
)

type DiscordNotifierCfg struct {
	BotKey    string
	ChannelId string
	Paytoken  domain.PayTokenRepo
	Account   account.Usecase
	// Ens is optional, addresses without an account alias fall back to their
	// reverse record when it is set.
	Ens ens.ENS
}

type discordNotifier struct {
	cfg     DiscordNotifierCfg
	discord *discordgo.Session
}

func NewDiscord(cfg DiscordNotifierCfg) auction.Notifier {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		panic("failed to connect to discord")
	}

	return &discordNotifier{cfg, discord}
}

// formatPrice renders an integer base-unit amount as a human amount with
// the currency symbol, resolving decimals from the pay token registry.
func (n *discordNotifier) formatPrice(c ctx.Ctx, chainId domain.ChainId, currency domain.Address, amount string) (string, error) {
	symbol := ""
	decimals := domain.NativeDecimals

	if currency.IsNative() {
		symbol = domain.ChainIdNativeSymbolMap[chainId]
	} else {
		paytoken, err := n.cfg.Paytoken.FindOne(c, chainId, currency)
		if err != nil {
			return "", err
		}
		if paytoken == nil {
			c.WithField("chainId", chainId).WithField("payToken", currency).Warn("unknown token")
			return "", domain.ErrInvalidCurrency
		}
		symbol = paytoken.Symbol
		decimals = paytoken.TokenDecimals
	}

	ns, err := domain.ToBigInt([]string{amount})
	if err != nil {
		return "", err
	}

	value, _ := decimal.NewFromBigInt(ns[0], -decimals).Float64()

	return fmt.Sprintf("%s %s", strconv.FormatFloat(value, 'f', -1, 64), symbol), nil
}

func (n *discordNotifier) alias(c ctx.Ctx, address domain.Address) string {
	acc, _ := n.cfg.Account.Get(c, address)
	if acc != nil && len(acc.Alias) > 0 {
		return acc.Alias
	}
	if n.cfg.Ens != nil {
		if name, err := n.cfg.Ens.ReverseResolve(c, address); err == nil && name != "" {
			return name
		}
	}
	return "-"
}

func (n *discordNotifier) chainName(c ctx.Ctx, chainId domain.ChainId) string {
	name, err := chain.GetChainDisplayName(chainId)
	if err != nil {
		c.WithField("chainId", chainId).Warn("unknown chainId")
		return fmt.Sprintf("chain %d", chainId)
	}
	return name
}

func (n *discordNotifier) send(msg *discordgo.MessageEmbed) error {
	if _, err := n.discord.ChannelMessageSendEmbed(n.cfg.ChannelId, msg); err != nil {
		return err
	}
	return nil
}

func (n *discordNotifier) NotifyAuctionCreated(c ctx.Ctx, a *auction.Auction) error {
	reserve, err := n.formatPrice(c, a.ChainId, a.Currency, a.ReservePrice)
	if err != nil {
		return err
	}

	msg := &discordgo.MessageEmbed{
		Title: "Auction opened",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Auction", Value: fmt.Sprintf("#%d", a.AuctionId)},
			{Name: "Chain", Value: n.chainName(c, a.ChainId)},
			{Name: "Seller", Value: fmt.Sprintf("%s (%s)", a.Seller, n.alias(c, a.Seller))},
			{Name: "Asset", Value: fmt.Sprintf("%s #%s x%d", a.ContractAddress, a.TokenId, a.Quantity)},
			{Name: "Reserve", Value: reserve},
			{Name: "Ends", Value: a.EndTime.UTC().Format(time.RFC3339)},
		},
	}

	return n.send(msg)
}

func (n *discordNotifier) NotifyNewBid(c ctx.Ctx, a *auction.Auction, bid *auction.Bid) error {
	amount, err := n.formatPrice(c, a.ChainId, a.Currency, bid.Amount)
	if err != nil {
		return err
	}

	msg := &discordgo.MessageEmbed{
		Title: "New bid!",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Auction", Value: fmt.Sprintf("#%d", a.AuctionId)},
			{Name: "Chain", Value: n.chainName(c, a.ChainId)},
			{Name: "Bidder", Value: fmt.Sprintf("%s (%s)", bid.Bidder, n.alias(c, bid.Bidder))},
			{Name: "Amount", Value: amount},
			{Name: "Ends", Value: a.EndTime.UTC().Format(time.RFC3339)},
		},
	}

	return n.send(msg)
}

func (n *discordNotifier) NotifyAuctionCancelled(c ctx.Ctx, a *auction.Auction) error {
	msg := &discordgo.MessageEmbed{
		Title: "Auction cancelled",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Auction", Value: fmt.Sprintf("#%d", a.AuctionId)},
			{Name: "Chain", Value: n.chainName(c, a.ChainId)},
			{Name: "Asset", Value: fmt.Sprintf("%s #%s x%d", a.ContractAddress, a.TokenId, a.Quantity)},
			{Name: "Returned to", Value: fmt.Sprintf("%s (%s)", a.Seller, n.alias(c, a.Seller))},
		},
	}

	return n.send(msg)
}

func (n *discordNotifier) NotifyAuctionSettled(c ctx.Ctx, a *auction.Auction) error {
	if !a.HasBid() {
		msg := &discordgo.MessageEmbed{
			Title: "Auction closed without bids",
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Auction", Value: fmt.Sprintf("#%d", a.AuctionId)},
				{Name: "Chain", Value: n.chainName(c, a.ChainId)},
				{Name: "Asset", Value: fmt.Sprintf("%s #%s x%d", a.ContractAddress, a.TokenId, a.Quantity)},
				{Name: "Returned to", Value: fmt.Sprintf("%s (%s)", a.Seller, n.alias(c, a.Seller))},
			},
		}
		return n.send(msg)
	}

	price, err := n.formatPrice(c, a.ChainId, a.Currency, a.WinningBid.Amount)
	if err != nil {
		return err
	}

	msg := &discordgo.MessageEmbed{
		Title: "Auction settled!",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Auction", Value: fmt.Sprintf("#%d", a.AuctionId)},
			{Name: "Chain", Value: n.chainName(c, a.ChainId)},
			{Name: "Seller", Value: fmt.Sprintf("%s (%s)", a.Seller, n.alias(c, a.Seller))},
			{Name: "Winner", Value: fmt.Sprintf("%s (%s)", a.WinningBid.Bidder, n.alias(c, a.WinningBid.Bidder))},
			{Name: "Asset", Value: fmt.Sprintf("%s #%s x%d", a.ContractAddress, a.TokenId, a.Quantity)},
			{Name: "Price", Value: price},
		},
	}

	return n.send(msg)
}

func (n *discordNotifier) NotifyParamsUpdated(c ctx.Ctx, chainId domain.ChainId, name string, value int64) error {
	content := fmt.Sprintf("Auction params updated on %s: %s = %d", n.chainName(c, chainId), name, value)

	if _, err := n.discord.ChannelMessageSend(n.cfg.ChannelId, content); err != nil {
		return err
	}
	return nil
}
