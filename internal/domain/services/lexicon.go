package services

import "github.com/zenithankit/dhankavach/internal/domain/models"

// The lexicon is the static, ordered rule data shared by the scorers.
// Tables are slices, not maps: first-match-wins and stable iteration
// order are part of the observable contract.

// messageCategory is one scam pattern group scanned by the message scorer.
type messageCategory struct {
	Category models.PatternCategory
	Display  string
	Keywords []string
}

var messageCategories = []messageCategory{
	{
		Category: models.CategoryUrgency,
		Display:  "Urgency",
		Keywords: []string{
			"urgent", "immediately", "act now", "limited time", "expire",
			"within 24 hours", "today only", "hurry", "quick", "fast",
			"तुरंत", "जल्दी",
		},
	},
	{
		Category: models.CategoryAuthorityImpersonation,
		Display:  "Authority Impersonation",
		Keywords: []string{
			"rbi", "reserve bank", "government", "police", "court",
			"income tax", "customs", "cbi", "ed", "enforcement",
			"sbi", "hdfc", "icici", "axis", "paytm", "phonepe", "gpay",
		},
	},
	{
		Category: models.CategorySensitiveInfoRequest,
		Display:  "Sensitive Info Request",
		Keywords: []string{
			"otp", "pin", "password", "cvv", "card number", "account number",
			"aadhaar", "pan", "bank details", "upi pin", "mpin",
		},
	},
	{
		Category: models.CategoryThreats,
		Display:  "Threats",
		Keywords: []string{
			"blocked", "suspended", "legal action", "arrest", "freeze",
			"deactivate", "terminate", "penalty", "fine", "jail",
		},
	},
	{
		Category: models.CategoryPrizeLottery,
		Display:  "Prize Lottery",
		Keywords: []string{
			"won", "winner", "lottery", "prize", "congratulations",
			"selected", "lucky", "reward", "cashback", "bonus",
		},
	},
	{
		Category: models.CategoryMoneyRequest,
		Display:  "Money Request",
		Keywords: []string{
			"transfer", "pay", "send money", "processing fee", "registration fee",
			"advance", "deposit", "refund",
		},
	},
	{
		Category: models.CategorySuspiciousLinks,
		Display:  "Suspicious Links",
		Keywords: []string{
			"click here", "click below", "tap here", "visit", "http://",
			"bit.ly", "tinyurl", "goo.gl",
		},
	},
}

// urlShorteners hide the real destination of a link.
var urlShorteners = []string{
	"bit.ly", "tinyurl", "t.co", "goo.gl", "ow.ly", "cutt.ly", "rebrand.ly",
}

// brandClaim maps a brand name to the domains it legitimately uses.
type brandClaim struct {
	Brand   string
	Domains []string
}

var brandClaims = []brandClaim{
	{Brand: "sbi", Domains: []string{"onlinesbi.com", "sbi.co.in"}},
	{Brand: "hdfc", Domains: []string{"hdfcbank.com"}},
	{Brand: "icici", Domains: []string{"icicibank.com"}},
	{Brand: "axis", Domains: []string{"axisbank.com"}},
	{Brand: "paytm", Domains: []string{"paytm.com"}},
	{Brand: "phonepe", Domains: []string{"phonepe.com"}},
	{Brand: "gpay", Domains: []string{"pay.google.com"}},
	{Brand: "amazon", Domains: []string{"amazon.in", "amazon.com"}},
	{Brand: "flipkart", Domains: []string{"flipkart.com"}},
}

var suspiciousTLDs = []string{".xyz", ".top", ".work", ".click", ".loan", ".win"}

var sensitiveURLKeywords = []string{"bank", "pay", "login", "secure"}

// tollFreePrefixes cover Indian toll-free number ranges.
var tollFreePrefixes = []string{"1800", "1860"}

// helpline is a known official number.
type helpline struct {
	Number string
	Name   string
}

var knownHelplines = []helpline{
	{Number: "1930", Name: "Cyber Crime Helpline"},
	{Number: "14440", Name: "Income Tax Helpline"},
	{Number: "18001801111", Name: "SBI Customer Care"},
	{Number: "18002586161", Name: "HDFC Customer Care"},
}

// scamRecord is one entry of the simulated scam-report database.
type scamRecord struct {
	Number        string
	Reports       int
	ScamType      string
	FirstReported string
}

var knownScamNumbers = []scamRecord{
	{Number: "9876543210", Reports: 47, ScamType: "Loan Fraud", FirstReported: "2024-03"},
	{Number: "8765432109", Reports: 23, ScamType: "KYC Scam", FirstReported: "2024-06"},
	{Number: "7654321098", Reports: 89, ScamType: "Investment Fraud", FirstReported: "2023-11"},
	{Number: "9988776655", Reports: 156, ScamType: "Lottery Scam", FirstReported: "2023-08"},
	{Number: "8899776655", Reports: 34, ScamType: "Tech Support Scam", FirstReported: "2024-01"},
}

// entityRecord is one known-legitimate financial entity.
type entityRecord struct {
	Name         string
	Type         string
	Registration string
}

var legitimateEntities = []entityRecord{
	{Name: "state bank of india", Type: "Bank", Registration: "Licensed Bank"},
	{Name: "sbi", Type: "Bank", Registration: "Licensed Bank"},
	{Name: "hdfc bank", Type: "Bank", Registration: "Licensed Bank"},
	{Name: "icici bank", Type: "Bank", Registration: "Licensed Bank"},
	{Name: "axis bank", Type: "Bank", Registration: "Licensed Bank"},
	{Name: "bajaj finserv", Type: "NBFC", Registration: "N-13.02109"},
	{Name: "tata capital", Type: "NBFC", Registration: "B-13.02108"},
	{Name: "muthoot finance", Type: "NBFC", Registration: "B-14.00456"},
}

// fakeNameFragments are name patterns common to unregistered scam lenders.
var fakeNameFragments = []string{
	"easy loan", "instant loan", "lucky", "prize", "lottery", "free money",
}

// scamPhrase is one weighted document scam indicator.
type scamPhrase struct {
	Phrase string
	Reason string
	Weight int
}

var documentScamPhrases = []scamPhrase{
	{Phrase: "0% interest", Reason: "0% interest claims are almost always scams", Weight: 4},
	{Phrase: "zero interest", Reason: "Zero interest claims are too good to be true", Weight: 4},
	{Phrase: "guaranteed return", Reason: "Guaranteed returns are always scams", Weight: 5},
	{Phrase: "no documentation", Reason: "No documentation required is a scam indicator", Weight: 4},
	{Phrase: "no paperwork", Reason: "No paperwork claims are suspicious", Weight: 4},
	{Phrase: "instant approval", Reason: "Instant approval without verification is suspicious", Weight: 3},
	{Phrase: "pre-approved", Reason: "Pre-approved offers from unknown sources are often scams", Weight: 3},
	{Phrase: "processing fee", Reason: "Upfront processing fees are loan scam indicators", Weight: 4},
	{Phrase: "pay first", Reason: "Pay first requests are definite scams", Weight: 5},
	{Phrase: "advance payment", Reason: "Advance payment requests are scam indicators", Weight: 4},
	{Phrase: "limited time", Reason: "Limited time pressure tactics are scam indicators", Weight: 3},
	{Phrase: "act now", Reason: "Act now urgency is a scam tactic", Weight: 3},
	{Phrase: "congratulations", Reason: "Congratulations in unsolicited offers is suspicious", Weight: 3},
	{Phrase: "selected", Reason: "You've been selected claims are often scams", Weight: 3},
	{Phrase: "double your money", Reason: "Money doubling schemes are always scams", Weight: 5},
	{Phrase: "पैसे दोगुना", Reason: "पैसे दोगुना स्कीम धोखाधड़ी है", Weight: 5},
	{Phrase: "गारंटी रिटर्न", Reason: "गारंटी रिटर्न हमेशा धोखा है", Weight: 5},
	{Phrase: "प्रोसेसिंग फीस", Reason: "प्रोसेसिंग फीस मांगना स्कैम है", Weight: 4},
	{Phrase: "तुरंत अप्रूवल", Reason: "तुरंत अप्रूवल बिना जांच के संदिग्ध है", Weight: 3},
}

// Document type classification keywords, checked in priority order.
var (
	loanKeywords       = []string{"loan", "लोन", "ऋण", "credit"}
	insuranceKeywords  = []string{"insurance", "बीमा", "policy"}
	investmentKeywords = []string{"investment", "निवेश", "mutual fund", "trading"}
	lotteryKeywords    = []string{"lottery", "prize", "winner", "लॉटरी", "इनाम"}
)

// purposeKeyword is one weighted transaction purpose risk indicator.
type purposeKeyword struct {
	Keyword string
	Reason  string
	Weight  int
}

var purposeKeywords = []purposeKeyword{
	// English keywords
	{Keyword: "investment", Reason: "Investment schemes are common scams / निवेश योजनाएं धोखाधड़ी हो सकती हैं", Weight: 4},
	{Keyword: "trading", Reason: "Trading schemes often turn out to be scams", Weight: 4},
	{Keyword: "crypto", Reason: "Cryptocurrency scams are very common", Weight: 4},
	{Keyword: "bitcoin", Reason: "Cryptocurrency scams are very common", Weight: 4},
	{Keyword: "lottery", Reason: "Lottery winnings requiring payment are ALWAYS scams / लॉटरी में पैसे मांगना धोखाधड़ी है", Weight: 5},
	{Keyword: "prize", Reason: "Prize claims requiring fees are scams", Weight: 5},
	{Keyword: "won", Reason: "Winning claims requiring payment are scams", Weight: 4},
	{Keyword: "winner", Reason: "Winning claims requiring payment are scams", Weight: 4},
	{Keyword: "urgent", Reason: "Urgency is a common scam tactic / जल्दबाजी धोखाधड़ी की निशानी है", Weight: 3},
	{Keyword: "immediately", Reason: "Urgency is a common scam tactic", Weight: 3},
	{Keyword: "blocked", Reason: "Account blocking threats are scam tactics", Weight: 3},
	{Keyword: "suspended", Reason: "Account suspension threats are scam tactics", Weight: 3},
	{Keyword: "kyc", Reason: "KYC update requests via payment are scams", Weight: 3},
	{Keyword: "processing fee", Reason: "Upfront fees for loans/prizes are scam indicators", Weight: 4},
	{Keyword: "registration fee", Reason: "Registration fees for prizes are scams", Weight: 4},
	{Keyword: "advance", Reason: "Advance payments for loans are scam indicators", Weight: 3},
	{Keyword: "guaranteed return", Reason: "Guaranteed returns are always scams", Weight: 5},
	{Keyword: "double money", Reason: "Money doubling schemes are scams", Weight: 5},
	{Keyword: "work from home", Reason: "Work from home requiring investment is often a scam", Weight: 3},
	{Keyword: "refund", Reason: "Fake refund calls are common scams", Weight: 3},
	// Hindi keywords
	{Keyword: "निवेश", Reason: "निवेश योजनाएं अक्सर धोखाधड़ी होती हैं / Investment schemes are often scams", Weight: 4},
	{Keyword: "पैसे दोगुना", Reason: "पैसे दोगुना करने का वादा हमेशा धोखा है / Money doubling is always a scam", Weight: 5},
	{Keyword: "दोगुना", Reason: "पैसे दोगुना स्कीम धोखाधड़ी है / Double money scheme is fraud", Weight: 5},
	{Keyword: "लॉटरी", Reason: "लॉटरी जीतने के लिए पैसे देना धोखाधड़ी है / Paying to claim lottery is a scam", Weight: 5},
	{Keyword: "इनाम", Reason: "इनाम के लिए फीस मांगना धोखाधड़ी है / Asking fees for prize is fraud", Weight: 5},
	{Keyword: "जीता", Reason: "जीतने का दावा करके पैसे मांगना धोखा है / Claiming you won and asking money is scam", Weight: 4},
	{Keyword: "जीत", Reason: "जीत का झांसा देकर पैसे मांगना धोखा है", Weight: 4},
	{Keyword: "तुरंत", Reason: "तुरंत/जल्दी करने का दबाव धोखाधड़ी की निशानी / Urgency pressure is scam sign", Weight: 3},
	{Keyword: "जल्दी", Reason: "जल्दी करने का दबाव धोखाधड़ी की निशानी है", Weight: 3},
	{Keyword: "फौरन", Reason: "फौरन करने का दबाव स्कैम है", Weight: 3},
	{Keyword: "ब्लॉक", Reason: "खाता ब्लॉक की धमकी धोखाधड़ी है / Account block threat is scam", Weight: 3},
	{Keyword: "बंद", Reason: "खाता बंद की धमकी धोखाधड़ी हो सकती है", Weight: 3},
	{Keyword: "प्रोसेसिंग फीस", Reason: "प्रोसेसिंग फीस मांगना लोन स्कैम है / Processing fee demand is loan scam", Weight: 4},
	{Keyword: "रजिस्ट्रेशन फीस", Reason: "रजिस्ट्रेशन फीस मांगना धोखाधड़ी है", Weight: 4},
	{Keyword: "एडवांस", Reason: "एडवांस पेमेंट मांगना धोखाधड़ी हो सकती है", Weight: 3},
	{Keyword: "गारंटी रिटर्न", Reason: "गारंटी रिटर्न का वादा हमेशा धोखा है / Guaranteed return is always scam", Weight: 5},
	{Keyword: "गारंटीड", Reason: "गारंटीड रिटर्न हमेशा धोखाधड़ी है", Weight: 5},
	{Keyword: "ट्रेडिंग", Reason: "ट्रेडिंग में पैसे लगाने का ऑफर धोखा हो सकता है", Weight: 4},
	{Keyword: "शेयर", Reason: "शेयर टिप्स देकर पैसे मांगना धोखा हो सकता है", Weight: 3},
	{Keyword: "क्रिप्टो", Reason: "क्रिप्टो निवेश में धोखाधड़ी बहुत आम है", Weight: 4},
	{Keyword: "बिटकॉइन", Reason: "बिटकॉइन स्कीम में सावधान रहें", Weight: 4},
	{Keyword: "वर्क फ्रॉम होम", Reason: "वर्क फ्रॉम होम में पैसे मांगना धोखा है", Weight: 3},
	{Keyword: "घर बैठे कमाएं", Reason: "घर बैठे कमाने का झांसा अक्सर धोखा होता है", Weight: 4},
	{Keyword: "रिफंड", Reason: "फर्जी रिफंड कॉल से सावधान", Weight: 3},
	{Keyword: "otp", Reason: "OTP मांगना धोखाधड़ी है / Asking for OTP is fraud", Weight: 5},
	{Keyword: "ओटीपी", Reason: "OTP किसी को न दें - यह धोखाधड़ी है", Weight: 5},
	{Keyword: "पिन", Reason: "PIN मांगना बैंक कभी नहीं करता - धोखाधड़ी है", Weight: 5},
	{Keyword: "कस्टम", Reason: "कस्टम ड्यूटी मांगना फर्जी डिलीवरी स्कैम है", Weight: 4},
	{Keyword: "डिलीवरी चार्ज", Reason: "अनजान डिलीवरी चार्ज स्कैम हो सकता है", Weight: 3},
}

// suspiciousUPIFragments flag UPI handles built around bait words.
var suspiciousUPIFragments = []string{"luck", "prize", "winner", "cash", "earn", "profit"}

// knownRecipient is one simulated trusted-recipient entry.
type knownRecipient struct {
	Keyword              string
	Name                 string
	Trust                models.TrustLevel
	PreviousTransactions int
}

var knownRecipients = []knownRecipient{
	// English
	{Keyword: "daughter", Name: "Daughter / बेटी", Trust: models.TrustLevelHigh, PreviousTransactions: 45},
	{Keyword: "son", Name: "Son / बेटा", Trust: models.TrustLevelHigh, PreviousTransactions: 38},
	{Keyword: "wife", Name: "Wife / पत्नी", Trust: models.TrustLevelHigh, PreviousTransactions: 120},
	{Keyword: "husband", Name: "Husband / पति", Trust: models.TrustLevelHigh, PreviousTransactions: 95},
	{Keyword: "mother", Name: "Mother / माँ", Trust: models.TrustLevelHigh, PreviousTransactions: 30},
	{Keyword: "father", Name: "Father / पिताजी", Trust: models.TrustLevelHigh, PreviousTransactions: 25},
	{Keyword: "brother", Name: "Brother / भाई", Trust: models.TrustLevelHigh, PreviousTransactions: 20},
	{Keyword: "sister", Name: "Sister / बहन", Trust: models.TrustLevelHigh, PreviousTransactions: 18},
	// Hindi
	{Keyword: "बेटी", Name: "बेटी / Daughter", Trust: models.TrustLevelHigh, PreviousTransactions: 45},
	{Keyword: "बेटा", Name: "बेटा / Son", Trust: models.TrustLevelHigh, PreviousTransactions: 38},
	{Keyword: "पत्नी", Name: "पत्नी / Wife", Trust: models.TrustLevelHigh, PreviousTransactions: 120},
	{Keyword: "पति", Name: "पति / Husband", Trust: models.TrustLevelHigh, PreviousTransactions: 95},
	{Keyword: "माँ", Name: "माँ / Mother", Trust: models.TrustLevelHigh, PreviousTransactions: 30},
	{Keyword: "मां", Name: "माँ / Mother", Trust: models.TrustLevelHigh, PreviousTransactions: 30},
	{Keyword: "पिताजी", Name: "पिताजी / Father", Trust: models.TrustLevelHigh, PreviousTransactions: 25},
	{Keyword: "पापा", Name: "पापा / Father", Trust: models.TrustLevelHigh, PreviousTransactions: 25},
	{Keyword: "भाई", Name: "भाई / Brother", Trust: models.TrustLevelHigh, PreviousTransactions: 20},
	{Keyword: "बहन", Name: "बहन / Sister", Trust: models.TrustLevelHigh, PreviousTransactions: 18},
	{Keyword: "दीदी", Name: "दीदी / Elder Sister", Trust: models.TrustLevelHigh, PreviousTransactions: 15},
	{Keyword: "भैया", Name: "भैया / Elder Brother", Trust: models.TrustLevelHigh, PreviousTransactions: 22},
	// Romanized
	{Keyword: "beti", Name: "Daughter / बेटी", Trust: models.TrustLevelHigh, PreviousTransactions: 45},
	{Keyword: "beta", Name: "Son / बेटा", Trust: models.TrustLevelHigh, PreviousTransactions: 38},
	{Keyword: "mummy", Name: "Mother / माँ", Trust: models.TrustLevelHigh, PreviousTransactions: 30},
	{Keyword: "papa", Name: "Father / पापा", Trust: models.TrustLevelHigh, PreviousTransactions: 25},
	{Keyword: "bhai", Name: "Brother / भाई", Trust: models.TrustLevelHigh, PreviousTransactions: 20},
	{Keyword: "didi", Name: "Elder Sister / दीदी", Trust: models.TrustLevelHigh, PreviousTransactions: 15},
}
