package deck

import (
	"strings"
)

// Content is the literal data the payment-path script is filled with
type Content struct {
	Title           string
	Subtitle        string
	ClosingTitle    string
	ClosingSubtitle string
	SiteURL         string
	Merchant        Rows
	Business        Rows
}

// DefaultMerchant is the merchant table submitted with the deck
func DefaultMerchant() Rows {
	return Rows{
		{Label: "상호명", Value: "(주) 코로아이"},
		{Label: "사업자번호", Value: "609-81-86463"},
		{Label: "URL", Value: "https://shipedu.vercel.app"},
		{Label: "Test ID", Value: "test@shipedu.kr"},
		{Label: "Test PW", Value: "test1234!"},
	}
}

// DefaultBusiness is the legal entity table the site footer must show
func DefaultBusiness() Rows {
	return Rows{
		{Label: "상호명", Value: "(주) 코로아이"},
		{Label: "대표자명", Value: "서중교"},
		{Label: "사업자등록번호", Value: "609-81-86463"},
		{Label: "통신판매업신고번호", Value: "(PG 계약 완료 후 신고 예정)"},
		{Label: "사업장주소", Value: "경상남도 창원시 성산구 연덕로 15번길 83(웅남동)"},
		{Label: "전화번호", Value: "055-266-8339"},
	}
}

// DefaultContent returns the data set of the 선박조종연구소 submission
func DefaultContent() Content {
	return Content{
		Title:           "선박조종연구소",
		Subtitle:        "토스페이먼츠 결제경로 파일",
		ClosingTitle:    "감사합니다",
		ClosingSubtitle: "선박조종연구소 - (주) 코로아이",
		SiteURL:         "https://shipedu.vercel.app",
		Merchant:        DefaultMerchant(),
		Business:        DefaultBusiness(),
	}
}

// Script returns the fixed slide sequence of the payment-path deck:
// opening title, merchant info, eight capture slides, closing title.
func Script(c Content) []SlideSpec {
	site := strings.TrimRight(c.SiteURL, "/")

	return []SlideSpec{
		Title{Heading: c.Title, Subheading: c.Subtitle},
		InfoTable{Heading: "① 가맹점 정보 기재", Rows: c.Merchant},
		ScreenshotPlaceholder{
			Heading:     "② 하단 정보 캡처",
			Instruction: "필수 구성 항목: " + strings.Join(c.Business.Labels(), " / "),
			Caption:     "[홈페이지 하단(Footer) 스크린샷 - 사업자 정보 포함]",
		},
		ScreenshotPlaceholder{
			Heading:     "③ 환불규정 캡처 (무형상품)",
			Instruction: "환불 규정을 캡처해요. URL: " + site + "/refund-policy",
			Caption:     "[환불정책 페이지 스크린샷]",
		},
		ScreenshotPlaceholder{
			Heading:     "④ 로그인 / 회원가입 캡처",
			Instruction: "로그인 혹은 회원가입 경로를 캡처해요. URL: " + site + "/login",
			Caption:     "[로그인 페이지 스크린샷]",
		},
		ScreenshotPlaceholder{
			Heading:     "⑤ 상품 선택 / 구매과정 캡처 (1/3)",
			Instruction: "강의 목록 페이지. URL: " + site + "/courses",
			Caption:     "[강의 목록 페이지 스크린샷]",
		},
		ScreenshotPlaceholder{
			Heading:     "⑤ 상품 선택 / 구매과정 캡처 (2/3)",
			Instruction: "강의 상세 페이지 (수강신청 버튼 포함). URL: " + site + "/courses/[강의ID]",
			Caption:     "[강의 상세 페이지 스크린샷 - 가격, 수강신청 버튼 표시]",
		},
		ScreenshotPlaceholder{
			Heading:     "⑤ 상품 선택 / 구매과정 캡처 (3/3)",
			Instruction: "결제 페이지. URL: " + site + "/checkout/[강의ID]",
			Caption:     "[결제 페이지 스크린샷 - 구매자 정보, 결제 금액 표시]",
		},
		ScreenshotPlaceholder{
			Heading:     "⑥ 카드 결제경로 캡처 (1/2)",
			Instruction: "토스페이먼츠 결제창 (카드 선택)",
			Caption:     "[토스페이먼츠 결제창 스크린샷 - 카드 결제 선택]",
		},
		ScreenshotPlaceholder{
			Heading:     "⑥ 카드 결제경로 캡처 (2/2)",
			Instruction: "카드사 인증 화면 (비씨 카드사는 결제 직전까지 캡처 필수)",
			Caption:     "[카드사 인증 화면 스크린샷]",
		},
		Title{Heading: c.ClosingTitle, Subheading: c.ClosingSubtitle},
	}
}

// Build renders the payment-path script into a fresh deck
func Build(c Content) *Deck {
	b := NewBuilder(c.Title + " 결제경로")
	for _, spec := range Script(c) {
		b.Render(spec)
	}
	return b.Deck()
}
