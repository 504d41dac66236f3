package services

import (
	"strings"

	"github.com/zenithankit/dhankavach/internal/domain/models"
	"github.com/zenithankit/dhankavach/pkg/logger"
)

type tipSet struct {
	English []string
	Hindi   []string
}

var tipsDatabase = map[string]tipSet{
	"upi": {
		English: []string{
			"Never share your UPI PIN with anyone, including bank employees",
			"Banks will NEVER ask for your PIN over phone or SMS",
			"Always verify the receiver's name before confirming payment",
			"To RECEIVE money, you never need to enter PIN or scan QR",
			"If someone sent money 'by mistake', tell them to contact their bank",
		},
		Hindi: []string{
			"अपना UPI PIN किसी को भी न बताएं, बैंक कर्मचारी को भी नहीं",
			"बैंक कभी भी फोन या SMS पर PIN नहीं मांगता",
			"पेमेंट से पहले रिसीवर का नाम जरूर देखें",
			"पैसे लेने के लिए कभी PIN डालने या QR स्कैन करने की जरूरत नहीं",
			"अगर कोई कहे गलती से पैसे भेज दिए, उन्हें बोलें अपने बैंक से संपर्क करें",
		},
	},
	"banking": {
		English: []string{
			"Never click on links in SMS - always go to official website directly",
			"Bank websites always start with https:// and show a lock icon",
			"Call customer care only from the number on your debit/credit card",
			"Banks never ask you to download apps like AnyDesk or TeamViewer",
			"Never share OTP - even bank staff don't need it",
		},
		Hindi: []string{
			"SMS में आए लिंक पर कभी क्लिक न करें - सीधे बैंक की वेबसाइट खोलें",
			"बैंक की असली वेबसाइट https:// से शुरू होती है",
			"कस्टमर केयर का नंबर हमेशा अपने ATM कार्ड से देखें",
			"बैंक कभी AnyDesk या TeamViewer डाउनलोड करने को नहीं कहता",
			"OTP किसी को न बताएं - बैंक कर्मचारी को भी नहीं चाहिए होता",
		},
	},
	"loans": {
		English: []string{
			"No legitimate loan requires upfront processing fees",
			"Always check if the lender is RBI registered",
			"Read all terms carefully before signing - especially interest rate and penalties",
			"Beware of 0% interest claims - there are always hidden charges",
			"Never share blank signed cheques or documents",
		},
		Hindi: []string{
			"असली लोन में पहले से कोई फीस नहीं देनी होती",
			"हमेशा देखें कि लोन देने वाला RBI में रजिस्टर्ड है या नहीं",
			"साइन करने से पहले सारी शर्तें पढ़ें - खासकर ब्याज दर और जुर्माना",
			"0% ब्याज के झांसे में न आएं - छुपे हुए चार्ज जरूर होते हैं",
			"कभी भी खाली साइन किए चेक या कागजात न दें",
		},
	},
	"kyc": {
		English: []string{
			"Banks NEVER send links for KYC updates via SMS",
			"KYC is always done at bank branch or through official bank app",
			"No one needs your OTP or PIN for KYC verification",
			"If you get KYC SMS, visit your branch in person to verify",
			"Real KYC never has a deadline of '24 hours' or 'today'",
		},
		Hindi: []string{
			"बैंक कभी SMS में KYC अपडेट का लिंक नहीं भेजता",
			"KYC हमेशा बैंक ब्रांच में या ऑफिशियल ऐप से होता है",
			"KYC के लिए किसी को OTP या PIN नहीं चाहिए",
			"KYC का SMS आए तो खुद ब्रांच जाकर पता करें",
			"असली KYC में '24 घंटे' या 'आज ही' जैसी जल्दबाजी नहीं होती",
		},
	},
	"otp": {
		English: []string{
			"OTP is like a key to your bank account - never share it",
			"No bank employee ever needs your OTP for any reason",
			"If someone asks for OTP, it's 100% a scam",
			"OTP is only for YOU to enter on official apps/websites",
			"Scammers may say 'just verify' or 'cancel transaction' - don't fall for it",
		},
		Hindi: []string{
			"OTP आपके बैंक खाते की चाबी है - किसी को न बताएं",
			"बैंक कर्मचारी को कभी OTP की जरूरत नहीं होती",
			"अगर कोई OTP मांगे, तो यह 100% धोखाधड़ी है",
			"OTP सिर्फ आपको ऑफिशियल ऐप/वेबसाइट पर डालना है",
			"ठग कहेंगे 'बस वेरीफाई करना है' - इस झांसे में न आएं",
		},
	},
	"scams": {
		English: []string{
			"If it sounds too good to be true, it's a scam",
			"Never pay money to receive a prize or lottery",
			"Government agencies don't threaten arrest over phone",
			"Verify any unusual request by calling official numbers",
			"When in doubt, ask a family member before acting",
		},
		Hindi: []string{
			"अगर कुछ बहुत अच्छा लग रहा है, तो यह धोखा है",
			"इनाम या लॉटरी लेने के लिए कभी पैसे न दें",
			"सरकारी एजेंसी फोन पर गिरफ्तारी की धमकी नहीं देती",
			"कोई भी अजीब बात हो तो ऑफिशियल नंबर पर कॉल करके पता करें",
			"शक हो तो परिवार के किसी सदस्य से पूछें, फिर कुछ करें",
		},
	},
}

// topicAliases normalize user-facing topic names to tip buckets.
// Unknown topics fall through to the conservative "scams" bucket.
var topicAliases = map[string]string{
	"upi":     "upi",
	"payment": "upi",
	"gpay":    "upi",
	"phonepe": "upi",
	"paytm":   "upi",
	"bank":    "banking",
	"banking": "banking",
	"account": "banking",
	"loan":    "loans",
	"loans":   "loans",
	"credit":  "loans",
	"kyc":     "kyc",
	"pan":     "kyc",
	"aadhaar": "kyc",
	"otp":     "otp",
	"pin":     "otp",
	"scam":    "scams",
	"scams":   "scams",
	"fraud":   "scams",
	"general": "scams",
}

// Advisor serves bilingual safety tips per topic.
type Advisor struct {
	logger *logger.Logger
}

// NewAdvisor creates a new safety tips advisor
func NewAdvisor(log *logger.Logger) *Advisor {
	return &Advisor{
		logger: log.WithComponent("advisor"),
	}
}

// Tips returns the tip set for a topic.
func (s *Advisor) Tips(topic string) *models.SafetyTips {
	topicLower := strings.ToLower(strings.TrimSpace(topic))

	matched, ok := topicAliases[topicLower]
	if !ok {
		matched = "scams"
	}
	tips := tipsDatabase[matched]

	return &models.SafetyTips{
		Status:      models.StatusSuccess,
		Topic:       matched,
		TipsEnglish: tips.English,
		TipsHindi:   tips.Hindi,
		TipCount:    len(tips.English),
	}
}
