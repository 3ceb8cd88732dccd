package templates

import (
	"fmt"
	"strings"

	"flyright-service/internal/domain/entity"
)

// BuildDealDigest renders the deal digest email. Deals are expected to be
// ranked by percent-off already; the top deal headlines the subject.
// Returns empty strings when there is nothing to send.
func BuildDealDigest(deals []*entity.Deal) (subject, html string) {
	if len(deals) == 0 {
		return "", ""
	}

	plural := ""
	if len(deals) > 1 {
		plural = "s"
	}
	subject = fmt.Sprintf("FlyRight Deals: %d Business Class Fare%s, Up to %d%% Off",
		len(deals), plural, deals[0].PctOff)

	var rows strings.Builder
	for _, d := range deals {
		rows.WriteString(dealRow(d))
	}

	html = fmt.Sprintf(digestShell, rows.String())
	return subject, html
}

func dealRow(d *entity.Deal) string {
	badges := make([]string, 0, 3)
	if d.Stops == 0 {
		badges = append(badges, "Nonstop")
	} else if d.Stops == 1 {
		badges = append(badges, "1 stop")
	} else {
		badges = append(badges, fmt.Sprintf("%d stops", d.Stops))
	}
	if d.Compliant {
		badges = append(badges, `<span style="color:#4ade80;">&#10003; Fly America</span>`)
	} else {
		badges = append(badges, `<span style="color:#fbbf24;">Check compliance</span>`)
	}
	if d.IsGateway {
		badges = append(badges, `<span style="color:#c084fc;">Gateway route</span>`)
	}

	return fmt.Sprintf(`
    <tr style="border-bottom:1px solid #1e293b;">
      <td style="padding:14px 12px;">
        <div style="font-weight:700;color:#e2e8f0;font-size:14px;">%s</div>
        <div style="font-size:11px;color:#64748b;margin-top:3px;">%s</div>
        <div style="font-size:11px;color:#64748b;">%s</div>
      </td>
      <td style="padding:14px 12px;text-align:center;">
        <div style="font-size:10px;color:#64748b;text-decoration:line-through;">$%d</div>
        <div style="font-size:22px;font-weight:800;color:#c2850c;">$%d</div>
      </td>
      <td style="padding:14px 12px;text-align:center;">
        <div style="background:#065f46;color:#4ade80;padding:4px 10px;border-radius:20px;font-size:12px;font-weight:700;display:inline-block;">%d%% off</div>
        <div style="font-size:11px;color:#4ade80;margin-top:4px;">Save $%d</div>
      </td>
      <td style="padding:14px 12px;text-align:center;font-size:12px;color:#94a3b8;">%s</td>
    </tr>`,
		d.Route, d.Carrier, strings.Join(badges, " &middot; "),
		d.AvgPrice, d.Price, d.PctOff, d.Savings, d.Date)
}

const digestShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width"></head>
<body style="margin:0;padding:0;background:#04080f;color:#c9d1d9;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;">
  <div style="max-width:640px;margin:0 auto;padding:24px 16px;">

    <div style="text-align:center;padding:24px 0;">
      <div style="font-size:28px;font-weight:800;color:#c2850c;letter-spacing:0.02em;">FlyRight</div>
      <div style="font-size:12px;color:#64748b;margin-top:4px;">Monthly Business Class Deals</div>
    </div>

    <div style="background:#0b1120;border:1px solid rgba(148,163,184,0.1);border-radius:8px;overflow:hidden;">
      <table style="width:100%%;border-collapse:collapse;">
        <thead>
          <tr style="background:rgba(194,133,12,0.08);">
            <th style="padding:10px 12px;text-align:left;font-size:10px;color:#c2850c;text-transform:uppercase;letter-spacing:0.05em;">Route</th>
            <th style="padding:10px 12px;text-align:center;font-size:10px;color:#c2850c;text-transform:uppercase;letter-spacing:0.05em;">Price</th>
            <th style="padding:10px 12px;text-align:center;font-size:10px;color:#c2850c;text-transform:uppercase;letter-spacing:0.05em;">Savings</th>
            <th style="padding:10px 12px;text-align:center;font-size:10px;color:#c2850c;text-transform:uppercase;letter-spacing:0.05em;">Date</th>
          </tr>
        </thead>
        <tbody>%s</tbody>
      </table>
    </div>

    <div style="text-align:center;padding:24px 0;">
      <a href="https://flyright.dipstopmarket.com"
         style="display:inline-block;background:linear-gradient(135deg,#c2850c,#a06b04);color:#04080f;text-decoration:none;padding:12px 28px;border-radius:6px;font-weight:700;font-size:14px;">
        Build Your Itinerary in FlyRight
      </a>
      <div style="font-size:11px;color:#475569;margin-top:12px;">
        Found a deal? Use FlyRight to build your compliant routing and cost construction before requesting through your TMC.
      </div>
    </div>

    <div style="border-top:1px solid #1e293b;padding-top:16px;text-align:center;">
      <div style="font-size:10px;color:#475569;">
        Fares are as of scan time and may change. Always verify with your Travel Management Company before booking.
        <br>Fly America compliance indicators are estimates. Confirm with your travel office.
      </div>
      <div style="font-size:10px;color:#475569;margin-top:8px;">
        <a href="https://dipstopmarket.com" style="color:#c2850c;">Dipstop Market</a> &middot;
        <a href="mailto:support@dipstopmarket.com" style="color:#c2850c;">Contact</a> &middot;
        <a href="#" style="color:#64748b;">Unsubscribe</a>
      </div>
    </div>

  </div>
</body>
</html>`
