package contenting

import "github.com/vfg2006/exterior-marketing/internal/domain"

// Templates de posts do Instagram por tipo de conteúdo
var postTemplates = map[domain.ContentType][]string{
	domain.ContentTypeShowcase: {
		"🏠{area}での{service}工事が完成しました！\n✨お客様に大変喜んでいただけました\n\n{seasonal_message}\n\n📞無料相談受付中\n\n#外構工事 #{service} #{area} #エクステリア #庭づくり #{season_name}",
		"📍新築外構工事完了のお知らせ\n{service}の施工が完了いたしました！\n\n{season_name}にぴったりの仕上がりになりました✨\nお客様にも大変喜んでいただけました😊\n\n無料お見積もり承ります\n\n#新築外構 #{service} #庭 #エクステリア #{season_name} #無料見積もり",
	},
	domain.ContentTypeProposal: {
		"🌸{season_name}の庭づくりシーズンですね！\n{proposal}はいかがですか？\n\n今なら無料お見積もり実施中✨\nお気軽にDMまたはお電話ください📱\n\n#{season_name} #{proposal} #庭づくり #エクステリア #無料見積もり #外構工事",
		"{season_name}におすすめの{proposal}のご提案💡\n\nお客様のご要望に合わせて\n最適なプランをご提案いたします\n\n📞お気軽にお問い合わせください\n\n#{season_name} #{proposal} #外構 #エクステリア #オーダーメイド",
	},
	domain.ContentTypeTestimonial: {
		"👥お客様の声をご紹介✨\n\n「{review}」\n\nありがとうございます！\nお客様の笑顔が私たちの励みです😊\n\n引き続きよろしくお願いいたします🙏\n\n#お客様の声 #外構工事 #エクステリア #感謝 #満足",
		"😊嬉しいお言葉をいただきました！\n\n「{review}」\n\nこのようなお言葉をいただけることが\n私たちの一番の喜びです✨\n\n#お客様満足 #外構 #エクステリア #ありがとうございます #信頼",
	},
}

const inquiryReplyTemplate = `{customer_name}様

この度は、弊社へお問い合わせいただき誠にありがとうございます。
{service}に関するご相談を承りました。

【ご相談内容】
{inquiry_content}

【弊社からのご提案】
{campaign}

無料お見積もりをご希望でしたら、現地調査の日程を調整させていただきます。
以下の候補日からご都合の良い日時をお選びください。

{available_dates}

ご不明な点がございましたら、お気軽にお申し付けください。

{signature}`

const followUpTemplate = `{customer_name}様

先日は貴重なお時間をいただき、ありがとうございました。
{service}の件でご提案させていただいた内容はいかがでしたでしょうか。

{seasonal_message}

何かご不明な点やご要望の変更等ございましたら、
遠慮なくお申し付けください。

{signature}`

const fallbackReply = "お問い合わせありがとうございます。後日ご連絡いたします。"

const fallbackPostTemplate = `🏗️ {season_name}の外構工事承ります！

✨ 地域密着20年の実績
🔧 無料現地調査・見積もり
📞 お気軽にお問い合わせください

{contact_phone}

#外構工事 #エクステリア #{season_name} #地域密着 #無料見積もり`

var customerReviews = []string{
	"思っていた以上に素敵な庭になりました",
	"丁寧な施工で安心してお任せできました",
	"提案力が素晴らしく、理想の外構になりました",
	"アフターフォローもしっかりしていて信頼できます",
	"価格も適正で、仕上がりに大満足です",
	"近所の方からもお褒めの言葉をいただきました",
	"季節ごとの手入れ方法も教えていただき助かります",
}
