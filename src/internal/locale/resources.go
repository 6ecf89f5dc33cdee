package locale

var resources = map[Lang]map[string]string{
	English: {
		"title":                 "SPRIDE",
		"notice":                "Notice",
		"noShuttle":             "No shuttles in operation",
		"register":              "Register",
		"help":                  "Helpful! / Report",
		"navShuttle":            "Shuttle",
		"navTaxi":               "Taxi Pool",
		"navLost":               "Lost & Found",
		"navProfile":            "Profile",
		"loginDescription":      "SPRIDE, your friendly shuttle assistant",
		"kakaoLogin":            "Continue with Kakao",
		"loginRequired":         "Login is required.",
		"toSchool":              "To School",
		"fromSchool":            "From School",
		"allRoutes":             "All Routes",
		"school":                "Joongbu University",
		"baekseok":              "Baekseok",
		"baekseokViaDaegok":     "Baekseok (via Daegok)",
		"samsong":               "Samsong",
		"samsong_with_wonheung": "Samsong (via Wonheung)",
		"noShuttleInfo":         "No shuttle information scheduled.",
		"departed":              "Departed",
		"minutesLeft":           "%d min left",
		"hoursMinutesLeft":      "%dh %dm left",
		"crowd_EMPTY":           "🟢 Empty",
		"crowd_LIGHT":           "🟢 Light",
		"crowd_NORMAL":          "🟡 Normal",
		"crowd_LITTLE_CROWDED":  "🟠 Slightly Crowded",
		"crowd_VERY_CROWDED":    "🔴 Very Crowded",
		"crowd_FULL":            "❌ Full",
		"status_WAITING":        "Waiting",
		"status_BOARDING":       "Boarding",
		"status_DEPARTED":       "Departed",
		"noticeTitle1":          "New Feature Announcement",
		"noticeContent1":        "School/Home bound tabs and route filtering have been added. Notices now switch automatically.",
		"noticeTitle2":          "Shuttle Change Announcement",
		"noticeContent2":        "Some changes have been made to the shuttle routes starting from Fall 2024.",
		"noticeTitle3":          "Application Usage Guide",
		"noticeContent3":        "Real-time shuttle tracking and favourite routes are coming soon.",
		"signUpPageTitle":       "Sign Up",
		"nicknameLabel":         "Nickname",
		"nicknamePlaceholder":   "Nickname (max 10 characters)",
		"introTextLabel":        "Self-Introduction",
		"introTextPlaceholder":  "One-line introduction (optional, max 50 characters)",
		"signupButton":          "Sign Up",
		"signupFail":            "Sign up failed.",
		"nicknameInvalid":       "Nickname must be 1 to 10 characters.",
		"introTooLong":          "Introduction must be at most 50 characters.",
		"profilePageTitle":      "Profile",
		"editProfile":           "Edit Profile",
		"logout":                "Logout",
		"uploadButton":          "Upload",
		"uploadSuccess":         "Profile picture uploaded successfully.",
		"uploadFail":            "Failed to upload profile picture.",
		"uploadMissing":         "Please choose a file to upload.",
		"submitButton":          "Submit",
		"profileUpdateSuccess":  "Profile information updated successfully.",
		"profileUpdateFail":     "Failed to update profile information.",
		"profileLoading":        "Loading profile...",
		"topLevel":              "Top level reached!",
		"taxiTitle":             "Taxi Pool",
		"recruit":               "Recruit Taxi Pod",
		"direction":             "Direction",
		"route":                 "Route",
		"content":               "Recruitment Details",
		"contentRequired":       "Please enter recruitment details.",
		"taxiCreateFail":        "Failed to register taxi pod.",
		"taxiCreated":           "Taxi pod registered.",
		"taxiLoadFail":          "Could not load taxi pods.",
		"cancel":                "Cancel",
		"commentRequired":       "Please enter comment content.",
		"commentFail":           "Error occurred during comment registration request.",
		"loading":               "Loading...",
		"backToList":            "Back to list",
		"comments":              "Comments",
		"noComments":            "No comments yet.",
		"writeComment":          "Write a comment",
		"departureTime":         "Departure time",
		"statusRegister":        "Report shuttle status",
		"statusRegistered":      "Thanks for the report!",
		"statusFail":            "Could not register the status.",
		"crowdLevel":            "Crowd level",
		"boardingStatus":        "Status",
		"close":                 "Close",
		"language":              "Language",
		"notFound":              "The page you are looking for does not exist.",
		"profileLoadFail":       "Could not load your profile.",
		"score":                 "Score",
	},
	Korean: {
		"title":                 "셔틀요정",
		"notice":                "공지사항",
		"noShuttle":             "운행 중인 셔틀이 없습니다",
		"register":              "등록",
		"help":                  "도움돼요! / 신고",
		"navShuttle":            "셔틀",
		"navTaxi":               "택시팟",
		"navLost":               "분실물",
		"navProfile":            "프로필",
		"loginDescription":      "친절한 셔틀 도우미, 셔틀요정",
		"kakaoLogin":            "카카오로 계속하기",
		"loginRequired":         "로그인이 필요합니다.",
		"toSchool":              "등교",
		"fromSchool":            "하교",
		"allRoutes":             "전체 노선",
		"school":                "중부대학교",
		"baekseok":              "백석",
		"baekseokViaDaegok":     "백석(대곡 경유)",
		"samsong":               "삼송",
		"samsong_with_wonheung": "삼송(원흥 경유)",
		"noShuttleInfo":         "예정된 셔틀 정보가 없습니다.",
		"departed":              "출발함",
		"minutesLeft":           "%d분 남음",
		"hoursMinutesLeft":      "%d시간 %d분 남음",
		"crowd_EMPTY":           "🟢 아주 여유",
		"crowd_LIGHT":           "🟢 여유",
		"crowd_NORMAL":          "🟡 보통",
		"crowd_LITTLE_CROWDED":  "🟠 혼잡",
		"crowd_VERY_CROWDED":    "🔴 매우 혼잡",
		"crowd_FULL":            "❌ 만석",
		"status_WAITING":        "대기 중",
		"status_BOARDING":       "탑승 중",
		"status_DEPARTED":       "출발함",
		"noticeTitle1":          "새 기능 안내",
		"noticeContent1":        "등교/하교 탭과 노선 필터가 추가되었습니다. 공지는 자동으로 넘어갑니다.",
		"noticeTitle2":          "셔틀 변경 안내",
		"noticeContent2":        "2024년 2학기부터 일부 셔틀 노선이 변경되었습니다.",
		"noticeTitle3":          "이용 가이드",
		"noticeContent3":        "실시간 셔틀 위치와 즐겨찾기 노선 기능이 곧 제공됩니다.",
		"signUpPageTitle":       "회원가입",
		"nicknameLabel":         "닉네임",
		"nicknamePlaceholder":   "닉네임 (최대 10자)",
		"introTextLabel":        "한 줄 소개",
		"introTextPlaceholder":  "셔틀요정에게 당신을 소개해주세요 (최대 50자)",
		"signupButton":          "가입하기",
		"signupFail":            "회원가입에 실패했습니다.",
		"nicknameInvalid":       "닉네임은 1~10자여야 합니다.",
		"introTooLong":          "한 줄 소개는 50자 이하여야 합니다.",
		"profilePageTitle":      "프로필",
		"editProfile":           "프로필 수정",
		"logout":                "로그아웃",
		"uploadButton":          "업로드",
		"uploadSuccess":         "프로필 사진이 성공적으로 업로드되었습니다.",
		"uploadFail":            "프로필 사진 업로드에 실패했습니다.",
		"uploadMissing":         "업로드할 파일을 선택해주세요.",
		"submitButton":          "제출",
		"profileUpdateSuccess":  "프로필 정보가 성공적으로 수정되었습니다.",
		"profileUpdateFail":     "프로필 정보 수정에 실패했습니다.",
		"profileLoading":        "정보 로딩 중...",
		"topLevel":              "최고 레벨 달성!",
		"taxiTitle":             "택시팟",
		"recruit":               "택시팟 모집하기",
		"direction":             "방향",
		"route":                 "노선",
		"content":               "모집 내용",
		"contentRequired":       "모집 내용을 입력해주세요.",
		"taxiCreateFail":        "택시팟 등록에 실패했습니다.",
		"taxiCreated":           "택시팟이 성공적으로 등록되었습니다!",
		"taxiLoadFail":          "택시팟 글 목록을 불러오지 못했습니다.",
		"cancel":                "취소",
		"commentRequired":       "댓글 내용을 입력해주세요.",
		"commentFail":           "댓글 등록 요청 중 오류가 발생했습니다.",
		"loading":               "로딩 중...",
		"backToList":            "목록으로",
		"comments":              "댓글",
		"noComments":            "아직 댓글이 없습니다.",
		"writeComment":          "댓글 작성",
		"departureTime":         "출발 시간",
		"statusRegister":        "셔틀 정보 등록",
		"statusRegistered":      "제보 감사합니다!",
		"statusFail":            "셔틀 정보 등록에 실패했습니다.",
		"crowdLevel":            "혼잡도",
		"boardingStatus":        "상태",
		"close":                 "닫기",
		"language":              "언어",
		"notFound":              "요청하신 페이지를 찾을 수 없습니다.",
		"profileLoadFail":       "프로필을 불러오지 못했습니다.",
		"score":                 "점수",
	},
}
